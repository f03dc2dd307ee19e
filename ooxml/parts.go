package ooxml

import (
	"encoding/xml"
	"strconv"
	"strings"
	"time"
)

const nsMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// textWidth is the A4 page width minus both margins, in twips.
const textWidth = 11906 - 2*1440

const contentTypesXML = xml.Header +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`

// headingSizes are the run sizes of Heading1..Heading6 in half-points.
var headingSizes = [...]int{32, 28, 26, 24, 22, 22}

var stylesXML = func() string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:styles xmlns:w="` + nsMain + `">`)
	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>` +
		`<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/>` +
		`<w:sz w:val="22"/><w:szCs w:val="22"/></w:rPr></w:rPrDefault>` +
		`<w:pPrDefault><w:pPr><w:spacing w:after="120" w:line="276" w:lineRule="auto"/></w:pPr></w:pPrDefault>` +
		`</w:docDefaults>`)
	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)
	for i, size := range headingSizes {
		n := strconv.Itoa(i + 1)
		sz := strconv.Itoa(size)
		b.WriteString(`<w:style w:type="paragraph" w:styleId="Heading` + n + `">` +
			`<w:name w:val="heading ` + n + `"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/>` +
			`<w:pPr><w:keepNext/><w:outlineLvl w:val="` + strconv.Itoa(i) + `"/></w:pPr>` +
			`<w:rPr><w:b/><w:sz w:val="` + sz + `"/><w:szCs w:val="` + sz + `"/></w:rPr></w:style>`)
	}
	b.WriteString(`</w:styles>`)
	return b.String()
}()

const (
	bulletAbstractID  = 0
	decimalAbstractID = 1
)

// numberingXML declares one bullet and one decimal list definition and a
// numbering instance per list, each restarting at 1.
func numberingXML(lists []listDef) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<w:numbering xmlns:w="` + nsMain + `">`)
	writeAbstract(&b, bulletAbstractID, "bullet", "•")
	writeAbstract(&b, decimalAbstractID, "decimal", "%1.")
	for _, l := range lists {
		abstract := bulletAbstractID
		if l.ordered {
			abstract = decimalAbstractID
		}
		b.WriteString(`<w:num w:numId="` + strconv.Itoa(l.numID) + `">` +
			`<w:abstractNumId w:val="` + strconv.Itoa(abstract) + `"/>` +
			`<w:lvlOverride w:ilvl="0"><w:startOverride w:val="1"/></w:lvlOverride></w:num>`)
	}
	b.WriteString(`</w:numbering>`)
	return b.String()
}

func writeAbstract(b *strings.Builder, id int, format, text string) {
	b.WriteString(`<w:abstractNum w:abstractNumId="` + strconv.Itoa(id) + `">` +
		`<w:multiLevelType w:val="singleLevel"/>` +
		`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="` + format + `"/>` +
		`<w:lvlText w:val="` + text + `"/><w:lvlJc w:val="left"/>` +
		`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum>`)
}

func coreXML(title string, created time.Time) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"` +
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	if title != "" {
		b.WriteString("<dc:title>")
		escape(&b, title)
		b.WriteString("</dc:title>")
	}
	b.WriteString(`<dc:creator>docconv</dc:creator>`)
	b.WriteString(`<dcterms:created xsi:type="dcterms:W3CDTF">` + created.Format(time.RFC3339) + `</dcterms:created>`)
	b.WriteString(`</cp:coreProperties>`)
	return b.String()
}
