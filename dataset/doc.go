// Package dataset defines the measurement samples consumed by the fitting engine.
//
// A Sample pairs solar irradiance, photovoltaic power and generation readings with
// the covariates used for clustering (sky state, panel inclination, ambient
// temperature). A Dataset is an ordered slice of samples; the order only matters for
// scatter output, every aggregation in the engine is order independent.
//
// An Axis selects which pair of quantities feeds the fitters:
//
//   - AxisIrradiancePower: x = irradiance (W/m²), y = power (kW)
//   - AxisPowerGeneration: x = power (kW), y = generation (kW)
//
// The engine assumes every sample it receives is valid. Callers that read raw rows
// should run them through Filter first.
package dataset
