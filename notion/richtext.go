package notion

// Color is a semantic color token of the destination API. The zero value
// means the destination default; raw hex or rgb() values never appear here.
type Color string

const (
	ColorYellowBackground Color = "yellow_background"
	ColorRedBackground    Color = "red_background"
	ColorGreenBackground  Color = "green_background"
	ColorBlueBackground   Color = "blue_background"
	ColorPurpleBackground Color = "purple_background"
	ColorPinkBackground   Color = "pink_background"
	ColorOrangeBackground Color = "orange_background"
	ColorGrayBackground   Color = "gray_background"
)

// Annotations is the formatting flag set carried by a rich text span.
type Annotations struct {
	Bold          bool  `json:"bold,omitempty"`
	Italic        bool  `json:"italic,omitempty"`
	Strikethrough bool  `json:"strikethrough,omitempty"`
	Underline     bool  `json:"underline,omitempty"`
	Code          bool  `json:"code,omitempty"`
	Color         Color `json:"color,omitempty"`
}

// IsZero reports whether no formatting is set.
func (a Annotations) IsZero() bool {
	return a == Annotations{}
}

// Merge overlays inner formatting on top of a. Boolean flags combine with OR;
// the inner color wins when set.
func (a Annotations) Merge(inner Annotations) Annotations {
	merged := Annotations{
		Bold:          a.Bold || inner.Bold,
		Italic:        a.Italic || inner.Italic,
		Strikethrough: a.Strikethrough || inner.Strikethrough,
		Underline:     a.Underline || inner.Underline,
		Code:          a.Code || inner.Code,
		Color:         a.Color,
	}
	if inner.Color != "" {
		merged.Color = inner.Color
	}
	return merged
}

// RichTextType discriminates rich text span variants.
type RichTextType string

const (
	RichTextText     RichTextType = "text"
	RichTextEquation RichTextType = "equation"
)

// RichText is a styled text run or an inline equation.
type RichText struct {
	Type        RichTextType `json:"type"`
	Text        *Text        `json:"text,omitempty"`
	Equation    *Equation    `json:"equation,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

// Text is the content of a text span with an optional link.
type Text struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link points a text span at a URL.
type Link struct {
	URL string `json:"url"`
}

// Equation is an inline LaTeX expression.
type Equation struct {
	Expression string `json:"expression"`
}

// NewText returns a plain text span.
func NewText(content string) RichText {
	return RichText{
		Type: RichTextText,
		Text: &Text{Content: content},
	}
}

// NewEquationSpan returns an inline equation span. Equation spans never carry
// annotations.
func NewEquationSpan(expression string) RichText {
	return RichText{
		Type:     RichTextEquation,
		Equation: &Equation{Expression: expression},
	}
}

// AnnotationsOrZero returns the span's annotations, or the zero value when
// none are set.
func (r RichText) AnnotationsOrZero() Annotations {
	if r.Annotations == nil {
		return Annotations{}
	}
	return *r.Annotations
}

// LinkURL returns the span's link target, or empty when the span is unlinked.
func (r RichText) LinkURL() string {
	if r.Text == nil || r.Text.Link == nil {
		return ""
	}
	return r.Text.Link.URL
}

// PlainText returns the span's visible text. Equations render as their
// expression.
func (r RichText) PlainText() string {
	switch r.Type {
	case RichTextEquation:
		if r.Equation == nil {
			return ""
		}
		return r.Equation.Expression
	default:
		if r.Text == nil {
			return ""
		}
		return r.Text.Content
	}
}
