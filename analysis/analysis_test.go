package analysis

import (
	"math"

	"github.com/arloliu/pvfit/dataset"
)

// skySplitDataset has two sky states following different lines of irradiance, every
// sample above the R² power threshold. Temperature and inclination are constant, so
// those strategies produce a single cluster.
func skySplitDataset() dataset.Dataset {
	ds := make(dataset.Dataset, 0, 20)
	for i := 1; i <= 10; i++ {
		x := float64(i * 100)
		ds = append(ds,
			dataset.Sample{Irradiance: x, Power: 45 + 0.02*x, Generation: 44 + 0.02*x, SkyState: dataset.SkyCloudy, Temperature: 20, Inclination: 25},
			dataset.Sample{Irradiance: x, Power: 45 + 0.06*x, Generation: 44 + 0.06*x, SkyState: dataset.SkyClear, Temperature: 20, Inclination: 25},
		)
	}

	return ds
}

// exactLineDataset follows power = 2*irradiance + 3 with integer inputs.
func exactLineDataset() dataset.Dataset {
	ds := make(dataset.Dataset, 0, 50)
	for i := 1; i <= 50; i++ {
		x := float64(i)
		sky := dataset.SkyClear
		if i%2 == 0 {
			sky = dataset.SkyCloudy
		}
		ds = append(ds, dataset.Sample{
			Irradiance:  x,
			Power:       2*x + 3,
			Generation:  2*x + 1,
			SkyState:    sky,
			Temperature: float64(i % 40),
			Inclination: float64(10 + i),
		})
	}

	return ds
}

// fieldDataset resembles real measurements with varied covariates.
func fieldDataset() dataset.Dataset {
	irr := []float64{110, 180, 260, 330, 390, 450, 520, 580, 640, 700, 760, 820, 880, 940, 990, 150, 300, 470, 610, 850}
	pow := []float64{6.5, 11.9, 18.7, 24.1, 28.3, 33.8, 38.6, 42.9, 47.1, 51.3, 54.6, 58.8, 62.0, 65.3, 67.9, 7.9, 19.4, 30.2, 40.8, 57.5}
	ds := make(dataset.Dataset, len(irr))
	for i := range irr {
		sky := dataset.SkyClear
		if i >= 15 {
			sky = dataset.SkyCloudy
		}
		ds[i] = dataset.Sample{
			Irradiance:  irr[i],
			Power:       pow[i],
			Generation:  pow[i] * 0.95,
			SkyState:    sky,
			Temperature: float64(5 + (i*7)%35),
			Inclination: float64(15 + (i*11)%40),
		}
	}

	return ds
}

// offsetSkyDataset follows power = 0.06*irradiance + 10 with ±2 alternating noise.
// Cloudy samples sit delta kW below clear ones, so clustering by sky state removes an
// error that grows with delta. Temperature and inclination are constant.
func offsetSkyDataset(delta float64) dataset.Dataset {
	ds := make(dataset.Dataset, 0, 38)
	for i := range 19 {
		x := 100 + 50*float64(i)
		noise := 2.0
		if i%2 == 1 {
			noise = -2
		}
		ds = append(ds,
			dataset.Sample{Irradiance: x, Power: 0.06*x + 10 + noise, Generation: 0.05*x + 9, SkyState: dataset.SkyClear, Temperature: 20, Inclination: 25},
			dataset.Sample{Irradiance: x, Power: 0.06*x + 10 - delta - noise, Generation: 0.05*x + 8, SkyState: dataset.SkyCloudy, Temperature: 20, Inclination: 25},
		)
	}

	return ds
}

// narrowIrradianceDataset holds 50 clear-noon samples with irradiance 900..949 W/m².
func narrowIrradianceDataset() dataset.Dataset {
	ds := make(dataset.Dataset, 50)
	for i := range ds {
		x := 900 + float64(i)
		sky := dataset.SkyCloudy
		if i%2 == 1 {
			sky = dataset.SkyClear
		}
		power := 2 + 0.05*x + 1e-5*x*x + math.Sin(float64(i))
		ds[i] = dataset.Sample{
			Irradiance:  x,
			Power:       power,
			Generation:  0.96 * power,
			SkyState:    sky,
			Temperature: 20,
			Inclination: 25,
		}
	}

	return ds
}
