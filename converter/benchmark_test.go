package converter

import (
	"context"
	"testing"
)

func BenchmarkConvert(b *testing.B) {
	conv, err := New(Config{})
	if err != nil {
		b.Fatalf("failed to create converter: %v", err)
	}

	input := `<div data-schema-version="8">
<h1>Reading notes</h1>
<p>Opening <b>remark</b> with a <a href="https://example.com">link</a> and
<span class="math">$x^2$</span> inline math.</p>
<ul>
<li>first point</li>
<li>second point<ul><li>nested detail</li></ul></li>
</ul>
<blockquote><p>a quoted passage worth keeping</p></blockquote>
<pre>fmt.Println("verbatim")</pre>
<p style="background-color: #2ea8e5">tinted paragraph</p>
</div>`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := conv.Convert(context.Background(), input); err != nil {
			b.Fatalf("convert failed: %v", err)
		}
	}
}

func BenchmarkConvertAnnotations(b *testing.B) {
	conv, err := New(Config{IsAnnotation: true, GroupByColor: true})
	if err != nil {
		b.Fatalf("failed to create converter: %v", err)
	}

	input := `<div data-schema-version="8">
<p><span class="highlight"><span style="background-color: #ffd400">"first insight"</span></span> <span class="citation">(Doe, 2024)</span> keep this #core</p>
<p><span class="highlight"><span style="background-color: #5fb236">"supporting evidence"</span></span> <span class="citation">(Roe, 2023)</span> verify later #followup #data</p>
<p><span class="highlight"><span style="background-color: #ffd400">"second insight"</span></span> <span class="citation">(Doe, 2024)</span></p>
</div>`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := conv.Convert(context.Background(), input); err != nil {
			b.Fatalf("convert failed: %v", err)
		}
	}
}
