package lectionary

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/TanachReader/core/errors"
	"github.com/FocuswithJustin/TanachReader/core/ref"
)

var readingExpr = xpath.MustCompile("//READING")

// reservedAttrs are option attributes that are not aliyah codes.
var reservedAttrs = map[string]bool{
	"TYPE":    true,
	"NAME":    true,
	"CYCLE":   true,
	"WRAPPED": true,
	"SPECIAL": true,
}

// Load parses a sedrot XML document into a Schedule. Range expressions are
// parsed eagerly; a malformed expression fails the load.
func Load(r io.Reader) (*Schedule, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.NewFormat("", "parsing sedrot XML: "+err.Error())
	}

	schedule := &Schedule{sedrot: make(map[string]*Sedra)}
	for _, node := range xmlquery.QuerySelectorAll(doc, readingExpr) {
		name := node.SelectAttr("NAME")
		sedra := &Sedra{Name: name}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != xmlquery.ElementNode {
				continue
			}
			tag := strings.ToUpper(child.Data)
			if tag != "OPTION" && tag != "HAFTARAH" {
				continue
			}
			opt, err := parseOption(name, tag, child)
			if err != nil {
				return nil, err
			}
			sedra.Options = append(sedra.Options, *opt)
		}

		key := strings.ToLower(name)
		if _, seen := schedule.sedrot[key]; !seen {
			schedule.names = append(schedule.names, name)
		}
		schedule.sedrot[key] = sedra
	}
	return schedule, nil
}

// LoadFile loads a sedrot XML file from disk.
func LoadFile(path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		if fe, ok := err.(*errors.FormatError); ok && fe.Path == "" {
			fe.Path = path
		}
		return nil, err
	}
	return s, nil
}

// parseOption converts one OPTION or HAFTARAH element. The element tag
// stands in for a missing TYPE attribute, so bare HAFTARAH elements resolve
// under the "Haftarah" reading type like any other option.
func parseOption(reading, tag string, node *xmlquery.Node) (*ReadingOption, error) {
	opt := &ReadingOption{
		Type:  tag,
		Cycle: -1,
	}
	if t := node.SelectAttr("TYPE"); t != "" {
		opt.Type = t
	}
	opt.Name = node.SelectAttr("NAME")
	if c := node.SelectAttr("CYCLE"); c != "" {
		if n, err := strconv.Atoi(c); err == nil {
			opt.Cycle = n
		}
	}
	opt.Wrapped = strings.EqualFold(node.SelectAttr("WRAPPED"), "true")
	opt.Special = node.SelectAttr("SPECIAL")

	// Every remaining attribute is an aliyah; document order is canonical
	// aliyah order.
	for _, attr := range node.Attr {
		key := strings.ToUpper(attr.Name.Local)
		if reservedAttrs[key] || attr.Value == "" {
			continue
		}
		rng, err := ref.Parse(attr.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %q option %q aliyah %s", reading, opt.Type, key)
		}
		opt.Aliyot = append(opt.Aliyot, Aliyah{Code: key, Raw: attr.Value, Range: rng})
	}
	return opt, nil
}
