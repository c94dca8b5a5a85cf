package circuit

import (
	"regexp"

	"golang.org/x/text/width"
)

// Vocabulary for each component kind: Japanese literals, English synonyms,
// and reference-designator forms (a letter plus optional digits). Designators
// are bounded with \b so "LED" does not read as an L inductor designator; the
// current-source designator requires at least one digit so a bare English "I"
// is not a component. Kinds are scanned independently in table order; a token
// that satisfies more than one kind's pattern counts once per kind.
var kindPatterns = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{KindResistor, regexp.MustCompile(`(?i)抵抗|レジスタ|\bresistors?\b|\bR\d*\b`)},
	{KindCapacitor, regexp.MustCompile(`(?i)コンデンサ|キャパシタ|\bcapacitors?\b|\bC\d*\b`)},
	{KindInductor, regexp.MustCompile(`(?i)インダクタ|コイル|\binductors?\b|\bcoils?\b|\bL\d*\b`)},
	{KindBattery, regexp.MustCompile(`(?i)電池|バッテリー|電源|\bbattery\b|\bbatteries\b`)},
	{KindLED, regexp.MustCompile(`(?i)発光ダイオード|\bLEDs?\b`)},
	{KindSwitch, regexp.MustCompile(`(?i)スイッチ|\bswitch(?:es)?\b|\bSW\b`)},
	{KindGround, regexp.MustCompile(`(?i)グランド|アース|\bGND\b|\bground\b|\bearth\b`)},
	{KindVoltageSource, regexp.MustCompile(`(?i)電圧源|\bvoltage sources?\b|\bV\d*\b`)},
	{KindCurrentSource, regexp.MustCompile(`(?i)電流源|\bcurrent sources?\b|\bI\d+\b`)},
}

// token matches one bare word token in a connection phrasing: kanji,
// katakana (with the prolonged sound mark), latin letters, digits. Hiragana
// is excluded so the particles in AとBを接続 delimit the tokens.
const token = `[\p{Han}\p{Katakana}ー\w]+`

// The five connection phrasings. Each pattern captures a (from, to) token
// pair; bilingual phrasings carry both alternatives and the unused side's
// groups stay empty. Connections are collected independently of component
// extraction, with no validation of the captured tokens.
var connectionPatterns = []*regexp.Regexp{
	// A and B connected: AとBを接続, optionally with an adverb (直列に, 並列に)
	regexp.MustCompile(`(` + token + `)と(` + token + `)を(?:\p{Han}+に)?接続` +
		`|\b(\w+) and (\w+) (?:are )?connected\b`),
	// A to B: AからBへ
	regexp.MustCompile(`(` + token + `)から(` + token + `)へ` +
		`|\bfrom (\w+) to (\w+)\b`),
	// Arrow glyph between tokens
	regexp.MustCompile(`(` + token + `)→(` + token + `)|(\w+)->(\w+)`),
	// Hyphen between tokens
	regexp.MustCompile(`(` + token + `)-(` + token + `)`),
	// Attach B to A: AにBを繋ぐ
	regexp.MustCompile(`(` + token + `)に(` + token + `)を繋ぐ` +
		`|\battach (\w+) to (\w+)\b`),
}

// Extract scans text for component vocabulary and connection phrasings and
// returns the resulting circuit with layout applied. It never fails: input
// with no recognizable vocabulary yields the canonical fallback circuit of a
// battery, a resistor and an LED in series.
func Extract(text string) *Circuit {
	// Fold width variants first so fullwidth designators (Ｒ１) and
	// halfwidth katakana match the vocabulary.
	folded := width.Fold.String(text)

	c := &Circuit{}
	for _, kp := range kindPatterns {
		for _, match := range kp.re.FindAllString(folded, -1) {
			c.Components = append(c.Components, Component{Kind: kp.kind, Label: match})
		}
	}
	if len(c.Components) == 0 {
		c.Components = fallbackComponents()
	}

	for _, re := range connectionPatterns {
		for _, groups := range re.FindAllStringSubmatch(folded, -1) {
			if from, to, ok := tokenPair(groups); ok {
				c.Connections = append(c.Connections, Connection{From: from, To: to})
			}
		}
	}

	Layout(c.Components)
	return c
}

// fallbackComponents returns the canonical default circuit, substituted when
// extraction finds nothing.
func fallbackComponents() []Component {
	return []Component{
		{Kind: KindBattery, Label: KindBattery.DisplayName()},
		{Kind: KindResistor, Label: KindResistor.DisplayName()},
		{Kind: KindLED, Label: KindLED.DisplayName()},
	}
}

// tokenPair picks the captured (from, to) pair out of a submatch, skipping
// the empty groups left by the unmatched language alternative.
func tokenPair(groups []string) (from, to string, ok bool) {
	var pair []string
	for _, g := range groups[1:] {
		if g != "" {
			pair = append(pair, g)
		}
	}
	if len(pair) != 2 {
		return "", "", false
	}
	return pair[0], pair[1], true
}
