// Package circuit defines the circuit model extracted from free-form text:
// an ordered list of components plus advisory connection metadata.
package circuit

// Kind identifies the schematic element a component represents. The set is
// closed: anything the extractor cannot classify renders as KindGeneric.
type Kind int

const (
	KindResistor Kind = iota
	KindCapacitor
	KindInductor
	KindBattery
	KindLED
	KindSwitch
	KindGround
	KindVoltageSource
	KindCurrentSource
	KindGeneric
)

var kindNames = map[Kind]string{
	KindResistor:      "resistor",
	KindCapacitor:     "capacitor",
	KindInductor:      "inductor",
	KindBattery:       "battery",
	KindLED:           "led",
	KindSwitch:        "switch",
	KindGround:        "ground",
	KindVoltageSource: "voltage_source",
	KindCurrentSource: "current_source",
	KindGeneric:       "generic",
}

// Human readable labels, used when a component has no literal match in the
// input (the fallback circuit). These mirror the vocabulary the extractor
// recognizes.
var kindDisplayNames = map[Kind]string{
	KindResistor:      "抵抗",
	KindCapacitor:     "コンデンサ",
	KindInductor:      "インダクタ",
	KindBattery:       "電池",
	KindLED:           "LED",
	KindSwitch:        "スイッチ",
	KindGround:        "GND",
	KindVoltageSource: "電圧源",
	KindCurrentSource: "電流源",
	KindGeneric:       "部品",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "generic"
}

// DisplayName returns the default label for components of this kind.
func (k Kind) DisplayName() string {
	if name, ok := kindDisplayNames[k]; ok {
		return name
	}
	return kindDisplayNames[KindGeneric]
}

// Component is one schematic element. X and Y are canvas coordinates in
// pixels, zero until Layout assigns them.
type Component struct {
	Kind  Kind
	Label string // The matched input token, or the kind's display name
	X     int
	Y     int
}

// Connection is a named from/to pair extracted from connection phrasing.
// Connections are advisory metadata only: the renderer wires components in
// list order and never consults them. Tokens are not validated against
// component labels.
type Connection struct {
	From string
	To   string
}

// Circuit is the result of one extraction: an ordered component list plus
// the connections found in the text. Built fresh per call, never shared.
type Circuit struct {
	Components  []Component
	Connections []Connection
}
