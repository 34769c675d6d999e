package orbital

// BohrRadius is a0 in meters, the natural length unit for orbital
// coordinates. API boundaries speak in units of a0; evaluation is in meters.
const BohrRadius = 5.29177210903e-11
