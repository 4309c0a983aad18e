package scene

// Remap linearly maps v from [inMin, inMax] onto [outMin, outMax]. The result
// is undefined when inMin == inMax; callers own distinct source bounds.
func Remap(v, inMin, inMax, outMin, outMax float64) float64 {
	return (v-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
