package prog

import (
	"encoding/json"
	"fmt"

	"github.com/styledstring/styledstring/pkg/sheet"
	"github.com/styledstring/styledstring/pkg/styled"
)

// SheetText holds the arguments naming a text in a sheet.
type SheetText struct {
	Sheet string `arg:"" type:"existingfile" help:"Sheet file."`
	Name  string `arg:"" help:"Name of the text in the sheet."`
}

func (st *SheetText) load() (styled.Text, error) {
	sh, err := sheet.Load(st.Sheet)
	if err != nil {
		return styled.Text{}, err
	}
	return sh.Text(st.Name)
}

type renderCmd struct {
	SheetText `embed:""`
	JSON bool `name:"json" help:"Write the text as JSON."`
}

func (c *renderCmd) Run(e *env) error {
	t, err := c.load()
	if err != nil {
		return err
	}
	return e.writeTextAs(t, c.JSON)
}

type runsCmd struct {
	SheetText `embed:""`
}

func (c *runsCmd) Run(e *env) error {
	t, err := c.load()
	if err != nil {
		return err
	}
	for _, r := range t.Runs() {
		style := r.Style.String()
		if style == "" {
			style = "-"
		}
		fmt.Fprintf(e.stdout, "%d-%d %s\n", r.From, r.To, style)
	}
	return nil
}

type stylesCmd struct {
	Sheet string `arg:"" type:"existingfile" help:"Sheet file."`
}

func (c *stylesCmd) Run(e *env) error {
	sh, err := sheet.Load(c.Sheet)
	if err != nil {
		return err
	}
	for _, name := range sh.StyleNames() {
		style, _ := sh.Style(name)
		fmt.Fprintf(e.stdout, ".%s { %s }\n", name, style.CSS())
	}
	return nil
}

type putCmd struct {
	SheetText `embed:""`
	As string `help:"Store under this name instead of the name in the sheet."`
}

func (c *putCmd) Run(e *env) error {
	t, err := c.load()
	if err != nil {
		return err
	}
	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	name := c.Name
	if c.As != "" {
		name = c.As
	}
	digest, err := st.Put(name, t)
	if err != nil {
		return err
	}
	logger.Printf("stored %s as %s", name, digest)
	return nil
}

type getCmd struct {
	Name string `arg:"" help:"Name of the stored text."`
	JSON bool   `name:"json" help:"Write the text as JSON."`
}

func (c *getCmd) Run(e *env) error {
	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	t, err := st.Get(c.Name)
	if err != nil {
		return err
	}
	return e.writeTextAs(t, c.JSON)
}

type lsCmd struct {
	Long bool `short:"l" help:"Also show the content digest of each text."`
}

func (c *lsCmd) Run(e *env) error {
	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	names, err := st.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		if !c.Long {
			fmt.Fprintln(e.stdout, name)
			continue
		}
		digest, err := st.Digest(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "%s %s\n", digest[:12], name)
	}
	return nil
}

type rmCmd struct {
	Names []string `arg:"" help:"Names of the stored texts."`
}

func (c *rmCmd) Run(e *env) error {
	st, err := e.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	for _, name := range c.Names {
		if err := st.Delete(name); err != nil {
			return err
		}
	}
	return nil
}

func (e *env) writeTextAs(t styled.Text, asJSON bool) error {
	if !asJSON {
		e.writeText(t)
		return nil
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s\n", data)
	return nil
}
