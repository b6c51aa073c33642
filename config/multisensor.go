package config

import (
	"fmt"
	"strings"
)

const topicPrefix = "multi"

// Multisensor is a single multisensor device as given on the command line.
type Multisensor struct {
	SensorId     string // Sensor identifier, as given
	FriendlyName string // Display name, as given
}

func New(sensorId string, friendlyName string) *Multisensor {
	return &Multisensor{
		SensorId:     sensorId,
		FriendlyName: friendlyName,
	}
}

// NormalizedSensorId is the sensor id as used in MQTT topics.
func (m *Multisensor) NormalizedSensorId() string {
	return strings.ToUpper(m.SensorId)
}

// Slug is the friendly name as used in entity ids. Only spaces are replaced.
func (m *Multisensor) Slug() string {
	return strings.Replace(strings.ToLower(m.FriendlyName), " ", "_", -1)
}

func (m *Multisensor) StateTopic() string {
	return fmt.Sprintf("%v/%v/state", topicPrefix, m.NormalizedSensorId())
}

func (m *Multisensor) CommandTopic() string {
	return fmt.Sprintf("%v/%v/set", topicPrefix, m.NormalizedSensorId())
}

func (m *Multisensor) DisplayName(suffix string) string {
	return fmt.Sprintf("%v %v", m.FriendlyName, suffix)
}

// Warnings lists inputs that are accepted but will most likely produce an unusable document.
func (m *Multisensor) Warnings() []string {
	warnings := make([]string, 0)

	if strings.TrimSpace(m.SensorId) == "" {
		warnings = append(warnings, "sensor id is blank, topics will be malformed")
	}
	if strings.TrimSpace(m.FriendlyName) == "" {
		warnings = append(warnings, "friendly name is blank, entity ids will be malformed")
	}

	return warnings
}
