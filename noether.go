/*
Package noether is a generic commutative-algebra library. It provides
arbitrary-precision scalar rings (integers, rationals, reals, complexes and
integers modulo N), multivariable polynomial rings and absolutely capped
precision weighted power-series rings over any of these, together with ring
homomorphisms and dense matrices, all in pure Go.
*/
package noether
