// Package gap finds and fills runs of missing (NaN) flux on a native
// wavelength axis.
//
// Interpolation never checks gap sizes itself; use [LargeInRange] first
// when large gaps must not be bridged silently.
package gap
