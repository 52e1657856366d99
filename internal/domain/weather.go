package domain

// Weather is the forecast payload for the selected city's coordinates:
// current conditions plus hourly and daily series. Field names follow the
// weather provider's response so the payload passes through unchanged.
type Weather struct {
	Current WeatherCurrent `json:"current"`
	Hourly  WeatherHourly  `json:"hourly"`
	Daily   WeatherDaily   `json:"daily"`
}

type WeatherCurrent struct {
	Time                string  `json:"time"`
	Temperature         float64 `json:"temperature_2m"`
	RelativeHumidity    float64 `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	WeatherCode         int     `json:"weather_code"`
	WindSpeed           float64 `json:"wind_speed_10m"`
	WindDirection       float64 `json:"wind_direction_10m"`
	UVIndex             float64 `json:"uv_index"`
}

type WeatherHourly struct {
	Time                     []string  `json:"time"`
	Temperature              []float64 `json:"temperature_2m"`
	WeatherCode              []int     `json:"weather_code"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
}

type WeatherDaily struct {
	Time                        []string  `json:"time"`
	WeatherCode                 []int     `json:"weather_code"`
	TemperatureMax              []float64 `json:"temperature_2m_max"`
	TemperatureMin              []float64 `json:"temperature_2m_min"`
	Sunrise                     []string  `json:"sunrise"`
	Sunset                      []string  `json:"sunset"`
	UVIndexMax                  []float64 `json:"uv_index_max"`
	PrecipitationSum            []float64 `json:"precipitation_sum"`
	PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
	WindSpeedMax                []float64 `json:"wind_speed_10m_max"`
}

// SunTimes holds sunrise/sunset and twilight instants for one date at the
// selected coordinates. Instants are RFC 3339 strings; DayLength is seconds.
type SunTimes struct {
	Sunrise                  string `json:"sunrise"`
	Sunset                   string `json:"sunset"`
	SolarNoon                string `json:"solar_noon"`
	DayLength                int    `json:"day_length"`
	CivilTwilightBegin       string `json:"civil_twilight_begin"`
	CivilTwilightEnd         string `json:"civil_twilight_end"`
	NauticalTwilightBegin    string `json:"nautical_twilight_begin"`
	NauticalTwilightEnd      string `json:"nautical_twilight_end"`
	AstronomicalTwilightBegin string `json:"astronomical_twilight_begin"`
	AstronomicalTwilightEnd   string `json:"astronomical_twilight_end"`
}
