package homeassistant

// LightSuffix is appended to the friendly name of the LED light
const LightSuffix = "LED"

// LightConfiguration represents a Home Assistant MQTT light using the JSON schema
type LightConfiguration struct {
	Platform     string `yaml:"platform"`
	Schema       string `yaml:"schema"`
	Name         string `yaml:"name"`
	StateTopic   string `yaml:"state_topic"`
	CommandTopic string `yaml:"command_topic"`
	Brightness   bool   `yaml:"brightness"`
	Flash        bool   `yaml:"flash"`
	RGB          bool   `yaml:"rgb"`
	Optimistic   bool   `yaml:"optimistic"`
}

func NewLightConfiguration(name string, stateTopic string, commandTopic string) *LightConfiguration {
	return &LightConfiguration{
		Platform:     PlatformMQTT,
		Schema:       "json",
		Name:         name,
		StateTopic:   stateTopic,
		CommandTopic: commandTopic,
		Brightness:   true,
		Flash:        true,
		RGB:          true,
		Optimistic:   false,
	}
}
