package models

type PackKind string

const (
	PackSingle PackKind = "single"
	PackTen    PackKind = "ten"
	PackTwenty PackKind = "twenty"
)

// PackInfo is the fixed price table entry for a credit pack.
type PackInfo struct {
	Credits int    `json:"credits"`
	Amount  int    `json:"amount"` // whole currency units
	Label   string `json:"label"`
}

var packTable = map[PackKind]PackInfo{
	PackSingle: {Credits: 1, Amount: 20, Label: "Single $20"},
	PackTen:    {Credits: 10, Amount: 180, Label: "10-Pack $180"},
	PackTwenty: {Credits: 20, Amount: 360, Label: "20-Pack $360"},
}

// Info returns the price table entry for the pack.
func (k PackKind) Info() (PackInfo, bool) {
	info, ok := packTable[k]
	return info, ok
}

// ParsePackKind accepts the canonical kinds plus the legacy "10"/"20"
// values the old client stored in its pack selector.
func ParsePackKind(s string) (PackKind, bool) {
	switch s {
	case "single":
		return PackSingle, true
	case "ten", "10":
		return PackTen, true
	case "twenty", "20":
		return PackTwenty, true
	default:
		return "", false
	}
}
