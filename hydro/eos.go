package hydro

// Ideal fluid equation of state, p = (Γ-1) ρ ε

func IdealFluidPressure(rho, eps, gamma float64) float64 {
	return (gamma - 1.) * rho * eps
}

func IdealFluidSpecificInternalEnergy(rho, p, gamma float64) float64 {
	return p / ((gamma - 1.) * rho)
}

// SpecificEnthalpyDensity is ρh = ρ + Γp/(Γ-1)
func SpecificEnthalpyDensity(rho, p, gamma float64) float64 {
	return rho + p*gamma/(gamma-1.)
}
