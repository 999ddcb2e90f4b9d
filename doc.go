/*
Package predictive is an LL(1) parsing toolbox.

It strives to be a small and predictable tool for table-driven top-down
parsing of DSLs. Package structure is as follows:

■ ll: Package ll implements grammars, PREDICT and FOLLOW set computation and
the construction of deterministic LL(1) parse tables.

■ ll/ll1: Package ll1 implements the stack automaton driving an LL(1) parse,
either as a cursor over parse events or as a parse tree builder.

■ ll/ptree: Package ptree implements the parse tree produced by the driver.

■ ll/scanner: Package scanner defines the token source contract and a
couple of tokenizers.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package predictive
