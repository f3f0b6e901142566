package dom

import (
	"encoding/json"
	"testing"
)

func TestMarkup(t *testing.T) {
	d := NewDocument()
	div := d.CreateNode("div")
	d.SetProperty(div, "draggable", true)
	d.SetProperty(div, "hidden", false)
	d.SetProperty(div, "title", `a "quoted"`+"\n"+`<title>`)
	d.SetProperty(div, "onclick", func() {})
	d.SetProperty(div, "tabIndex", 3)

	input := d.CreateNode("input")
	d.SetProperty(input, "value", "x")
	d.AppendChild(div, input)
	d.AppendChild(div, d.CreateText("1 < 2 & 'ok'"))

	want := `<div draggable tabIndex="3" title="a &quot;quoted&quot;&#10;&lt;title&gt;">` +
		`<input value="x">1 &lt; 2 &amp; &#39;ok&#39;</div>`
	if got := Markup(div); got != want {
		t.Errorf("Markup =\n%s\nwant\n%s", got, want)
	}
}

func TestSnap(t *testing.T) {
	d := NewDocument()
	btn := d.CreateNode("button")
	d.SetProperty(btn, "onclick", func() {})
	d.SetProperty(btn, "type", "button")
	d.AppendChild(btn, d.CreateText("+1"))

	data, err := json.Marshal(Snap(btn))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"element","tag":"button","props":{"onclick":"ƒ","type":"button"},"children":[{"kind":"text","text":"+1"}]}`
	if string(data) != want {
		t.Errorf("json = %s\nwant %s", data, want)
	}
}
