package domain

// PieFigure is the render-ready proportion chart of a session.
type PieFigure struct {
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Data     AggregateResult `json:"data"`
}

// ScatterFigure is the render-ready correlation chart of a session.
type ScatterFigure struct {
	Title    string       `json:"title"`
	Category string       `json:"category"`
	Range    PayloadRange `json:"range"`
	Rows     ScatterRows  `json:"rows"`
	// YTicks pins the outcome axis to the flag values.
	YTicks []Outcome `json:"y_ticks"`
}
