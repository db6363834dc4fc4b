package report

import (
	"io"

	"github.com/gingfrederik/docx"

	"watermetal/domain/risk"
)

// WriteDocx renders the report body as a Word document.
func WriteDocx(w io.Writer, bundle *risk.Bundle) error {
	body := BuildBody(bundle)

	f := docx.New()
	f.AddParagraph().AddText(body.Title).Size(16)

	for i, section := range body.Sections {
		if i > 0 {
			f.AddParagraph()
		}
		f.AddParagraph().AddText(section.Heading).Size(12)
		for _, line := range section.Lines {
			f.AddParagraph().AddText(line)
		}
	}

	return f.Write(w)
}
