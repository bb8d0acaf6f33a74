package input

// StaticContext is a fixed Context, handy where no model exists yet
type StaticContext struct {
	Index    int
	Total    int
	SheetID  string
	Text     string
	Dropdown bool
	Found    bool
}

func (c StaticContext) CurrentIndex() int      { return c.Index }
func (c StaticContext) TotalItems() int        { return c.Total }
func (c StaticContext) CurrentSheetID() string { return c.SheetID }
func (c StaticContext) SearchText() string     { return c.Text }
func (c StaticContext) DropdownOpen() bool     { return c.Dropdown }
func (c StaticContext) DetailFound() bool      { return c.Found }
