package grid

// Aux records the generation parameters behind the current grid. It is
// replaced as a whole on every generation; fields a pattern does not use
// are null.
type Aux struct {
	Complexity    int     `json:"complexity"`
	Variation1    Slot    `json:"variation1"`
	Variation2    Slot    `json:"variation2"`
	BaseVariation Slot    `json:"baseVariation"`
	Vertical      bool    `json:"vertical"`
	TypoRow       Slot    `json:"typoRow"`
	TypoRow2      Slot    `json:"typoRow2"`
	TypoCol       Slot    `json:"typoCol"`
	TypoCols      [7]Slot `json:"typoCols"`
}
