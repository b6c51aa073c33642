package homeassistant

import "fmt"

const PlatformMQTT = "mqtt"

// NoRounding leaves the value_json field as reported by the sensor.
const NoRounding = -1

// Measurement is one reading published on the multisensor state topic.
type Measurement struct {
	Suffix       string // Appended to the friendly name
	EntitySuffix string // Appended to the slug in the entity id
	Field        string // Field in the state payload
	Precision    int    // Decimals passed to round, or NoRounding
	Unit         string
}

var (
	Motion      = Measurement{Suffix: "PIR", EntitySuffix: "_pir", Field: "motion", Precision: NoRounding}
	Temperature = Measurement{Suffix: "Temperature", EntitySuffix: "_temperature", Field: "temperature", Precision: 1, Unit: "°F"}
	FeelsLike   = Measurement{Suffix: "Feels Like", EntitySuffix: "_feels_like", Field: "heatIndex", Precision: 0, Unit: "°F"}
	Humidity    = Measurement{Suffix: "Humidity", EntitySuffix: "_humidity", Field: "humidity", Precision: 0, Unit: "%"}
)

// Measurements in the order they appear under sensor:
var Measurements = []Measurement{Motion, Temperature, FeelsLike, Humidity}

// ValueTemplate returns the Home Assistant template extracting field from the JSON state.
func ValueTemplate(field string, precision int) string {
	if precision == NoRounding {
		return fmt.Sprintf("{{ value_json.%v }}", field)
	}

	return fmt.Sprintf("{{ value_json.%v | round(%v) }}", field, precision)
}

// SensorConfiguration represents a Home Assistant MQTT sensor
type SensorConfiguration struct {
	Platform          string `yaml:"platform"`
	StateTopic        string `yaml:"state_topic"`
	Name              string `yaml:"name"`
	UnitOfMeasurement string `yaml:"unit_of_measurement,omitempty"`
	ValueTemplate     string `yaml:"value_template"`
}

func NewSensorConfiguration(name string, stateTopic string, measurement Measurement) *SensorConfiguration {
	return &SensorConfiguration{
		Platform:          PlatformMQTT,
		StateTopic:        stateTopic,
		Name:              name,
		UnitOfMeasurement: measurement.Unit,
		ValueTemplate:     ValueTemplate(measurement.Field, measurement.Precision),
	}
}
