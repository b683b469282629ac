// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/styles"
	"github.com/atelier-labs/stylist-cli/internal/core/domain"
)

// ProductList displays catalog products in a navigable list. Each
// line carries a variant cursor: the colour and size that an add to
// cart would use.
type ProductList struct {
	products []domain.Product
	selected int

	// Per-product variant cursors, keyed by product ID so they
	// survive filter changes.
	colorIdx map[string]int
	sizeIdx  map[string]int

	showRetailers bool

	styles *styles.Styles
	width  int
	height int
}

// NewProductList creates a new product list component.
func NewProductList(s *styles.Styles) *ProductList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ProductList{
		styles:   s,
		colorIdx: make(map[string]int),
		sizeIdx:  make(map[string]int),
		width:    80,
		height:   12,
	}
}

// Init initialises the product list.
func (p *ProductList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (p *ProductList) Update(msg tea.Msg) (*ProductList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			p.MoveUp()
		case "down", "j":
			p.MoveDown()
		case "left", "h":
			p.CycleColor(-1)
		case "right", "l":
			p.CycleColor(1)
		case "s":
			p.CycleSize(1)
		}
	}
	return p, nil
}

// SetProducts replaces the listed products, clamping the selection.
func (p *ProductList) SetProducts(products []domain.Product) {
	p.products = products
	if p.selected >= len(products) {
		p.selected = 0
	}
}

// Products returns the listed products.
func (p *ProductList) Products() []domain.Product {
	return p.products
}

// MoveUp moves the selection up.
func (p *ProductList) MoveUp() {
	if p.selected > 0 {
		p.selected--
	}
}

// MoveDown moves the selection down.
func (p *ProductList) MoveDown() {
	if p.selected < len(p.products)-1 {
		p.selected++
	}
}

// Selected returns the index of the selected product.
func (p *ProductList) Selected() int {
	return p.selected
}

// SelectedProduct returns the currently selected product, or nil.
func (p *ProductList) SelectedProduct() *domain.Product {
	if len(p.products) == 0 || p.selected < 0 || p.selected >= len(p.products) {
		return nil
	}
	return &p.products[p.selected]
}

// SelectedVariant returns the selected product together with its
// current colour and size cursor.
func (p *ProductList) SelectedVariant() (*domain.Product, string, string) {
	product := p.SelectedProduct()
	if product == nil {
		return nil, "", ""
	}
	var color, size string
	if len(product.Colors) > 0 {
		color = product.Colors[p.colorIdx[product.ID]%len(product.Colors)]
	}
	if len(product.Sizes) > 0 {
		size = product.Sizes[p.sizeIdx[product.ID]%len(product.Sizes)]
	}
	return product, color, size
}

// CycleColor moves the selected product's colour cursor.
func (p *ProductList) CycleColor(delta int) {
	product := p.SelectedProduct()
	if product == nil {
		return
	}
	n := len(product.Colors)
	if n == 0 {
		return
	}
	p.colorIdx[product.ID] = ((p.colorIdx[product.ID]+delta)%n + n) % n
}

// CycleSize moves the selected product's size cursor.
func (p *ProductList) CycleSize(delta int) {
	product := p.SelectedProduct()
	if product == nil {
		return
	}
	n := len(product.Sizes)
	if n == 0 {
		return
	}
	p.sizeIdx[product.ID] = ((p.sizeIdx[product.ID]+delta)%n + n) % n
}

// SetShowRetailers toggles the retailer line under the selection.
// Used in catalog mode where the cart is disabled.
func (p *ProductList) SetShowRetailers(show bool) {
	p.showRetailers = show
}

// ShowRetailers reports whether the retailer line is visible.
func (p *ProductList) ShowRetailers() bool {
	return p.showRetailers
}

// View renders the product list.
func (p *ProductList) View() string {
	if len(p.products) == 0 {
		return p.styles.Muted.Render("No pieces match your filters")
	}

	lines := make([]string, 0, len(p.products)+4)

	header := p.styles.Subtitle.Render(fmt.Sprintf("Curated for you (%d)", len(p.products)))
	lines = append(lines, header, "")

	// Each product renders on one line plus an optional detail line,
	// so budget two lines per row.
	visibleCount := (p.height - 3) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if p.selected >= visibleCount {
		start = p.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(p.products) {
		end = len(p.products)
	}

	for i := start; i < end; i++ {
		lines = append(lines, p.renderProduct(i, &p.products[i]))
		if i == p.selected {
			lines = append(lines, p.renderDetail(&p.products[i]))
		}
	}

	return strings.Join(lines, "\n")
}

// renderProduct formats a single product row.
func (p *ProductList) renderProduct(index int, product *domain.Product) string {
	indicator := "  "
	if index == p.selected {
		indicator = "> "
	}

	name := product.Name
	maxNameLen := p.width - 30
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	price := fmt.Sprintf("$%.0f", product.Price)

	if index == p.selected {
		return p.styles.Selected.Render(
			fmt.Sprintf("%s%-*s  %-12s %s", indicator, maxNameLen, name, product.Brand, price))
	}
	return p.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxNameLen, name)) +
		p.styles.Muted.Render(fmt.Sprintf("%-12s ", product.Brand)) +
		p.styles.Price.Render(price)
}

// renderDetail formats the variant cursor line for the selection.
func (p *ProductList) renderDetail(product *domain.Product) string {
	var color, size string
	if len(product.Colors) > 0 {
		color = product.Colors[p.colorIdx[product.ID]%len(product.Colors)]
	}
	if len(product.Sizes) > 0 {
		size = product.Sizes[p.sizeIdx[product.ID]%len(product.Sizes)]
	}

	detail := fmt.Sprintf("    %s | colour: %s (←/→) | size: %s (s)", product.Category, color, size)

	if p.showRetailers && len(product.Retailers) > 0 {
		names := make([]string, 0, len(product.Retailers))
		for _, r := range product.Retailers {
			names = append(names, r.Name)
		}
		detail += " | at " + strings.Join(names, ", ")
	}

	return p.styles.Muted.Render(detail)
}

// SetDimensions sets the list dimensions.
func (p *ProductList) SetDimensions(width, height int) {
	p.width = width
	p.height = height
}
