package homeassistant

import "fmt"

const (
	DomainSensor = "sensor"
	DomainLight  = "light"

	ledEntitySuffix = "_led"
	groupKeySuffix  = "_multisensor"
	groupNameSuffix = "Multisensor"
)

// EntityId returns the Home Assistant entity id, e.g. sensor.front_porch_humidity
func EntityId(domain string, slug string, suffix string) string {
	return fmt.Sprintf("%v.%v%v", domain, slug, suffix)
}

// GroupConfiguration represents a group bundling all entities of one multisensor.
// Key is the top level key of the group in the configuration document.
type GroupConfiguration struct {
	Key string

	Name     string   `yaml:"name"`
	Entities []string `yaml:"entities"`
}

func NewGroupConfiguration(slug string, friendlyName string) *GroupConfiguration {
	return &GroupConfiguration{
		Key:  slug + groupKeySuffix,
		Name: fmt.Sprintf("%v %v", friendlyName, groupNameSuffix),
		Entities: []string{
			EntityId(DomainSensor, slug, Temperature.EntitySuffix),
			EntityId(DomainSensor, slug, FeelsLike.EntitySuffix),
			EntityId(DomainSensor, slug, Humidity.EntitySuffix),
			EntityId(DomainSensor, slug, Motion.EntitySuffix),
			EntityId(DomainLight, slug, ledEntitySuffix),
		},
	}
}
