package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/victorjacobs/ha-multisensor/config"
	"github.com/victorjacobs/ha-multisensor/homeassistant"
)

// Document is the Home Assistant configuration fragment for one multisensor
type Document struct {
	Light   *homeassistant.LightConfiguration
	Sensors []*homeassistant.SensorConfiguration
	Group   *homeassistant.GroupConfiguration
}

func NewDocument(m *config.Multisensor) *Document {
	stateTopic := m.StateTopic()

	sensors := make([]*homeassistant.SensorConfiguration, 0, len(homeassistant.Measurements))
	for _, measurement := range homeassistant.Measurements {
		sensors = append(sensors, homeassistant.NewSensorConfiguration(m.DisplayName(measurement.Suffix), stateTopic, measurement))
	}

	return &Document{
		Light:   homeassistant.NewLightConfiguration(m.DisplayName(homeassistant.LightSuffix), stateTopic, m.CommandTopic()),
		Sensors: sensors,
		Group:   homeassistant.NewGroupConfiguration(m.Slug(), m.FriendlyName),
	}
}

func (d *Document) Render() (string, error) {
	var builder strings.Builder
	if err := documentTemplate.Execute(&builder, d); err != nil {
		return "", fmt.Errorf("error rendering document: %w", err)
	}

	return builder.String(), nil
}

// Render returns the configuration document for the given sensor id and friendly name.
func Render(sensorId string, friendlyName string) (string, error) {
	return NewDocument(config.New(sensorId, friendlyName)).Render()
}

// Write writes the normalized sensor id, the friendly name, two blank lines and
// finally the configuration document to w.
func Write(w io.Writer, m *config.Multisensor) error {
	document, err := NewDocument(m).Render()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%v\n%v\n\n\n%v\n", m.NormalizedSensorId(), m.FriendlyName, document); err != nil {
		return fmt.Errorf("error writing document: %w", err)
	}

	return nil
}
