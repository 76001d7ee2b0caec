package polynomial

// gaussLegendre9 tabulates the 9-point Gauss-Legendre quadrature rule on
// [-1, 1] as {weight, node} pairs, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>
//
// Cubic.Length uses this fixed rule rather than an adaptive one: spec.md's
// Non-goals rule out adaptive quadrature for this module, in favor of one
// fixed-order rule per polynomial degree.
var gaussLegendre9 = [...][2]float64{
	{0.3302393550012598, 0.0000000000000000},
	{0.1806481606948574, -0.8360311073266358},
	{0.1806481606948574, 0.8360311073266358},
	{0.0812743883615744, -0.9681602395076261},
	{0.0812743883615744, 0.9681602395076261},
	{0.3123470770400029, -0.3242534234038089},
	{0.3123470770400029, 0.3242534234038089},
	{0.2606106964029354, -0.6133714327005904},
	{0.2606106964029354, 0.6133714327005904},
}
