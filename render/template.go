package render

import "text/template"

var documentTemplate = template.Must(template.New("multisensor").Parse(`light:
{{- with .Light }}
  - platform: {{ .Platform }}
    schema: {{ .Schema }}
    name: "{{ .Name }}"
    state_topic: "{{ .StateTopic }}"
    command_topic: "{{ .CommandTopic }}"
    brightness: {{ .Brightness }}
    flash: {{ .Flash }}
    rgb: {{ .RGB }}
    optimistic: {{ .Optimistic }}
{{- end }}

sensor:
{{ range $i, $sensor := .Sensors }}{{ if $i }}
{{ end }}  - platform: {{ $sensor.Platform }}
    state_topic: "{{ $sensor.StateTopic }}"
    name: "{{ $sensor.Name }}"
{{ with $sensor.UnitOfMeasurement }}    unit_of_measurement: "{{ . }}"
{{ end }}    value_template: '{{ $sensor.ValueTemplate }}'
{{ end }}

{{ .Group.Key }}:
  name: {{ .Group.Name }}
  entities:
{{ range .Group.Entities }}    - {{ . }}
{{ end }}`))
