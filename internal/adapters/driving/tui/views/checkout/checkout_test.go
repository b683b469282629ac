package checkout

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/messages"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/styles"
	"github.com/atelier-labs/stylist-cli/internal/core/domain"
)

// MockCheckoutService implements driving.CheckoutService for testing.
type MockCheckoutService struct {
	stage     domain.CheckoutStage
	active    bool
	lastOrder *domain.Order

	SubmitShippingFunc func(form domain.ShippingForm) error
	SubmitPaymentFunc  func(form domain.PaymentForm) error
	CompleteFunc       func() error
	CancelFunc         func()
}

func (m *MockCheckoutService) Begin() error {
	m.stage = domain.StageShipping
	m.active = true
	return nil
}

func (m *MockCheckoutService) SubmitShipping(form domain.ShippingForm) error {
	if m.SubmitShippingFunc != nil {
		return m.SubmitShippingFunc(form)
	}
	m.stage = domain.StagePayment
	return nil
}

func (m *MockCheckoutService) SubmitPayment(form domain.PaymentForm) error {
	if m.SubmitPaymentFunc != nil {
		return m.SubmitPaymentFunc(form)
	}
	m.stage = domain.StageProcessing
	return nil
}

func (m *MockCheckoutService) Complete() error {
	if m.CompleteFunc != nil {
		return m.CompleteFunc()
	}
	m.stage = domain.StageShipping
	m.active = false
	return nil
}

func (m *MockCheckoutService) Cancel() {
	if m.CancelFunc != nil {
		m.CancelFunc()
	}
	m.stage = domain.StageShipping
	m.active = false
}

func (m *MockCheckoutService) Stage() domain.CheckoutStage { return m.stage }

func (m *MockCheckoutService) Active() bool { return m.active }

func (m *MockCheckoutService) LastOrder() *domain.Order { return m.lastOrder }

func newTestView() (*View, *MockCheckoutService) {
	checkout := &MockCheckoutService{stage: domain.StageShipping, active: true}
	view := NewView(styles.DefaultStyles(), nil, checkout)
	view.SetDimensions(100, 30)
	view.Refresh()
	return view, checkout
}

func typeText(view *View, text string) {
	for _, r := range text {
		view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func fillShipping(view *View) {
	fields := []string{"Ada", "Lovelace", "ada@example.com", "1 Analytical Way", "London", "LDN", "12345"}
	for i, value := range fields {
		typeText(view, value)
		if i < len(fields)-1 {
			view.Update(tea.KeyMsg{Type: tea.KeyTab})
		}
	}
}

func TestNewView(t *testing.T) {
	view, _ := newTestView()

	require.NotNil(t, view)
	assert.Equal(t, domain.StageShipping, view.Stage())
	assert.Len(t, view.fields, 7)
	assert.Equal(t, 0, view.focused)
}

func TestView_FocusMovesThroughFields(t *testing.T) {
	view, _ := newTestView()

	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, view.focused)

	view.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, view.focused)

	// Wraps backwards from the first field.
	view.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 6, view.focused)
}

func TestView_EnterAdvancesFields(t *testing.T) {
	view, _ := newTestView()

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, view.focused)
}

func TestView_SubmitShipping_RequiresAllFields(t *testing.T) {
	view, checkout := newTestView()

	called := false
	checkout.SubmitShippingFunc = func(domain.ShippingForm) error {
		called = true
		return nil
	}

	// Jump to the last field and submit with everything blank.
	for i := 0; i < 6; i++ {
		view.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, called)
	assert.Contains(t, view.View(), "is required")
}

func TestView_SubmitShipping_Success(t *testing.T) {
	view, checkout := newTestView()

	var form domain.ShippingForm
	checkout.SubmitShippingFunc = func(f domain.ShippingForm) error {
		form = f
		checkout.stage = domain.StagePayment
		return nil
	}

	fillShipping(view)
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Ada", form.FirstName)
	assert.Equal(t, "Lovelace", form.LastName)
	assert.Equal(t, "12345", form.Zip)

	// The view rebuilt for the payment stage.
	assert.Equal(t, domain.StagePayment, view.Stage())
	assert.Len(t, view.fields, 4)
}

func TestView_SubmitPayment_Success(t *testing.T) {
	view, checkout := newTestView()
	checkout.stage = domain.StagePayment
	view.Refresh()
	require.Len(t, view.fields, 4)

	var form domain.PaymentForm
	checkout.SubmitPaymentFunc = func(f domain.PaymentForm) error {
		form = f
		checkout.stage = domain.StageProcessing
		return nil
	}

	for i, value := range []string{"4242424242424242", "12/27", "123", "Ada Lovelace"} {
		typeText(view, value)
		if i < 3 {
			view.Update(tea.KeyMsg{Type: tea.KeyTab})
		}
	}
	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "4242424242424242", form.CardNumber)
	assert.Equal(t, "Ada Lovelace", form.NameOnCard)
	assert.Equal(t, domain.StageProcessing, view.Stage())
}

func TestView_Esc_CancelsCheckout(t *testing.T) {
	view, checkout := newTestView()

	cancelled := false
	checkout.CancelFunc = func() { cancelled = true }

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, cancelled)
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewCart}, cmd())
}

func TestView_Processing_RendersSpinner(t *testing.T) {
	view, checkout := newTestView()
	checkout.stage = domain.StageProcessing
	cmd := view.Refresh()

	assert.NotNil(t, cmd)
	assert.Contains(t, view.View(), "Processing your payment")
}

func TestView_Success_RendersOrder(t *testing.T) {
	view, checkout := newTestView()
	checkout.stage = domain.StageSuccess
	checkout.lastOrder = &domain.Order{
		ID: "ord-1",
		Items: []domain.CartItem{
			{Product: domain.Product{Name: "Silk Wrap Dress"}, Quantity: 1, Size: "M", Color: "Navy"},
		},
		Totals:   domain.CartTotals{Total: 426.60},
		Shipping: domain.ShippingForm{FirstName: "Ada", LastName: "Lovelace", Address: "1 Analytical Way", City: "London", Zip: "12345"},
	}
	view.Refresh()

	rendered := view.View()

	assert.Contains(t, rendered, "Order confirmed!")
	assert.Contains(t, rendered, "ord-1")
	assert.Contains(t, rendered, "Silk Wrap Dress")
	assert.Contains(t, rendered, "$426.60")
	assert.Contains(t, rendered, "Ada Lovelace")
}

func TestView_Success_EnterFinishes(t *testing.T) {
	view, checkout := newTestView()
	checkout.stage = domain.StageSuccess
	view.Refresh()

	completed := false
	checkout.CompleteFunc = func() error {
		completed = true
		return nil
	}

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, completed)
	require.NotNil(t, cmd)
	assert.Equal(t, messages.CheckoutFinished{}, cmd())
}

func TestView_AutoComplete_ReturnsToChat(t *testing.T) {
	view, checkout := newTestView()
	checkout.stage = domain.StageProcessing
	view.Refresh()

	// The confirm timer finished the order off the UI loop.
	checkout.stage = domain.StageShipping
	checkout.active = false
	checkout.lastOrder = &domain.Order{ID: "ord-2"}

	_, cmd := view.Update(messages.SessionChanged{})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.CheckoutFinished{}, cmd())
}

func TestView_ConfirmTimerOnSuccessScreen_ReturnsToChat(t *testing.T) {
	view, checkout := newTestView()
	checkout.stage = domain.StageSuccess
	view.Refresh()

	// The user lingered on the success screen until the confirm timer
	// completed the order.
	checkout.stage = domain.StageShipping
	checkout.active = false
	checkout.lastOrder = &domain.Order{ID: "ord-3"}

	_, cmd := view.Update(messages.SessionChanged{})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.CheckoutFinished{}, cmd())
}
