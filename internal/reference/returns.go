package reference

// HistoricalAnnualReturns is a bundled series of nominal US 60/40 portfolio
// annual returns, 1990-2024, used by the Monte Carlo bootstrap sampler.
// Sources: S&P Dow Jones Indices and Bloomberg aggregate bond data.
var HistoricalAnnualReturns = []float64{
	-0.007, 0.240, 0.076, 0.099, 0.003, 0.294, 0.152, 0.218, 0.210, 0.129, // 1990-1999
	-0.012, -0.047, -0.094, 0.189, 0.087, 0.041, 0.112, 0.062, -0.223, 0.185, // 2000-2009
	0.121, 0.046, 0.114, 0.178, 0.104, 0.012, 0.083, 0.142, -0.026, 0.222, // 2010-2019
	0.141, 0.158, -0.162, 0.177, 0.150, // 2020-2024
}

// HistoricalInflation is the matching CPI-U series, 1990-2024.
var HistoricalInflation = []float64{
	0.054, 0.042, 0.030, 0.030, 0.026, 0.028, 0.030, 0.023, 0.016, 0.022,
	0.034, 0.028, 0.016, 0.023, 0.027, 0.034, 0.032, 0.028, 0.038, -0.004,
	0.016, 0.032, 0.021, 0.015, 0.016, 0.001, 0.013, 0.021, 0.024, 0.018,
	0.012, 0.047, 0.080, 0.041, 0.029,
}
