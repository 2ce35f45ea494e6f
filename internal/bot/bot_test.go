package bot

import (
	"fmt"
	"testing"

	"parrotshop/internal/models"
	"parrotshop/internal/repositories"
	"parrotshop/internal/services"
	"parrotshop/pkg/telegram"

	"github.com/stretchr/testify/assert"
)

type sentMessage struct {
	chatID string
	text   string
}

type sentKeyboard struct {
	chatID  string
	text    string
	buttons [][]telegram.InlineButton
}

type editedMessage struct {
	chatID    string
	messageID int64
	text      string
	buttons   [][]telegram.InlineButton
}

type sentPhoto struct {
	chatID   string
	photoURL string
	caption  string
}

// fakeAPI records every outgoing Telegram call. fail breaks every
// method; failSends breaks only SendMessage.
type fakeAPI struct {
	messages  []sentMessage
	keyboards []sentKeyboard
	edits     []editedMessage
	photos    []sentPhoto
	answered  []string
	fail      bool
	failSends bool
}

func (f *fakeAPI) SendMessage(chatID, text string) error {
	if f.fail || f.failSends {
		return fmt.Errorf("send failed")
	}
	f.messages = append(f.messages, sentMessage{chatID, text})
	return nil
}

func (f *fakeAPI) SendMessageWithKeyboard(chatID, text string, buttons [][]telegram.InlineButton) error {
	if f.fail {
		return fmt.Errorf("send failed")
	}
	f.keyboards = append(f.keyboards, sentKeyboard{chatID, text, buttons})
	return nil
}

func (f *fakeAPI) EditMessageText(chatID string, messageID int64, text string, buttons [][]telegram.InlineButton) error {
	if f.fail {
		return fmt.Errorf("edit failed")
	}
	f.edits = append(f.edits, editedMessage{chatID, messageID, text, buttons})
	return nil
}

func (f *fakeAPI) SendPhoto(chatID, photoURL, caption string) error {
	if f.fail {
		return fmt.Errorf("photo failed")
	}
	f.photos = append(f.photos, sentPhoto{chatID, photoURL, caption})
	return nil
}

func (f *fakeAPI) AnswerCallbackQuery(callbackQueryID string) error {
	f.answered = append(f.answered, callbackQueryID)
	return nil
}

// chatIDs used across the workflow tests.
const (
	customerChat = "77"
	adminChat    = "admin-chat"
)

func newTestBot(t *testing.T) (*Bot, *fakeAPI, *services.OrderService) {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	err := productRepo.Create(&models.Product{
		Name:     "Padovan GrandMix для попугаев",
		Slug:     "padovan-grandmix",
		Category: models.CategoryFeed,
		Price:    850,
		InStock:  true,
	})
	assert.NoError(t, err)

	orders := services.NewOrderService(
		repositories.NewMockOrderRepository(),
		productRepo,
		nil,
		services.PricingConfig{CourierFee: 300, FreeDeliveryThreshold: 3000},
	)

	fake := &fakeAPI{}
	b := New(fake, orders, Config{
		AdminChatID: adminChat,
		BotUsername: "parrot_shop_bot",
		BaseURL:     "https://shop.example.com",
	})
	return b, fake, orders
}

func placeOrder(t *testing.T, orders *services.OrderService, payment string) *services.CreateOrderResult {
	t.Helper()
	result, err := orders.CreateOrder(services.CreateOrderInput{
		CustomerName:   "Мария",
		CustomerPhone:  "+79990001122",
		DeliveryMethod: models.DeliveryPickup,
		PaymentMethod:  payment,
		Items:          []services.CreateOrderItem{{ProductID: 1, Quantity: 2}},
	})
	assert.NoError(t, err)
	return result
}

func messageUpdate(id int64, text string) telegram.Update {
	return telegram.Update{
		UpdateID: id,
		Message:  &telegram.Message{MessageID: id, Chat: telegram.Chat{ID: 77}, Text: text},
	}
}

func callbackUpdate(id int64, data string) telegram.Update {
	return telegram.Update{
		UpdateID: id,
		CallbackQuery: &telegram.CallbackQuery{
			ID:      fmt.Sprintf("cb-%d", id),
			Data:    data,
			Message: &telegram.Message{MessageID: 10, Chat: telegram.Chat{ID: 77}},
		},
	}
}

func TestBot_StartWithToken_ShowsOrderSummary(t *testing.T) {
	b, fake, orders := newTestBot(t)
	result := placeOrder(t, orders, models.PaymentCash)

	err := b.HandleUpdate(messageUpdate(1, "/start "+result.ConfirmationToken))
	assert.NoError(t, err)

	assert.Len(t, fake.keyboards, 1)
	kb := fake.keyboards[0]
	assert.Equal(t, customerChat, kb.chatID)
	assert.Contains(t, kb.text, result.OrderNumber)
	assert.Contains(t, kb.text, "1 700 ₽")
	// cash goes straight to confirm/cancel
	assert.Len(t, kb.buttons, 1)
	assert.Equal(t, cbConfirm+result.ConfirmationToken, kb.buttons[0][0].CallbackData)
	assert.Equal(t, cbCancel+result.ConfirmationToken, kb.buttons[0][1].CallbackData)
}

func TestBot_StartWithUnknownToken(t *testing.T) {
	b, fake, _ := newTestBot(t)

	err := b.HandleUpdate(messageUpdate(1, "/start no-such-token"))
	assert.NoError(t, err)

	assert.Len(t, fake.messages, 1)
	assert.Contains(t, fake.messages[0].text, "Заказ не найден")
	assert.Empty(t, fake.keyboards)
}

func TestBot_BareStart_Welcomes(t *testing.T) {
	b, fake, _ := newTestBot(t)

	err := b.HandleUpdate(messageUpdate(1, "/start"))
	assert.NoError(t, err)

	assert.Len(t, fake.messages, 1)
	assert.Contains(t, fake.messages[0].text, "Добро пожаловать")
}

func TestBot_UnknownMessage_FallbackReply(t *testing.T) {
	b, fake, _ := newTestBot(t)

	err := b.HandleUpdate(messageUpdate(1, "где мой заказ?"))
	assert.NoError(t, err)

	assert.Len(t, fake.messages, 1)
	assert.Contains(t, fake.messages[0].text, "менеджер")
}

func TestBot_ConfirmCallback(t *testing.T) {
	b, fake, orders := newTestBot(t)
	result := placeOrder(t, orders, models.PaymentCash)

	err := b.HandleUpdate(callbackUpdate(2, cbConfirm+result.ConfirmationToken))
	assert.NoError(t, err)

	order, getErr := orders.GetOrderByToken(result.ConfirmationToken)
	assert.NoError(t, getErr)
	assert.Equal(t, models.StatusConfirmed, order.Status)
	assert.True(t, order.Confirmed)

	assert.Len(t, fake.edits, 1)
	assert.Contains(t, fake.edits[0].text, "подтвержден")
	assert.Equal(t, []string{"cb-2"}, fake.answered)

	// the operator chat hears about the decision
	assert.Len(t, fake.messages, 1)
	assert.Equal(t, adminChat, fake.messages[0].chatID)
	assert.Contains(t, fake.messages[0].text, result.OrderNumber)
}

func TestBot_ConfirmCallback_ReplayIsNoop(t *testing.T) {
	b, fake, orders := newTestBot(t)
	result := placeOrder(t, orders, models.PaymentCash)

	assert.NoError(t, b.HandleUpdate(callbackUpdate(2, cbConfirm+result.ConfirmationToken)))
	adminNotices := len(fake.messages)

	// same button pressed again
	assert.NoError(t, b.HandleUpdate(callbackUpdate(3, cbConfirm+result.ConfirmationToken)))

	order, _ := orders.GetOrderByToken(result.ConfirmationToken)
	assert.Equal(t, models.StatusConfirmed, order.Status)

	assert.Len(t, fake.edits, 2)
	assert.Contains(t, fake.edits[1].text, "уже подтвержден")
	// no second operator notice for a replay
	assert.Len(t, fake.messages, adminNotices)
}

func TestBot_CancelCallback(t *testing.T) {
	b, fake, orders := newTestBot(t)
	result := placeOrder(t, orders, models.PaymentCash)

	err := b.HandleUpdate(callbackUpdate(2, cbCancel+result.ConfirmationToken))
	assert.NoError(t, err)

	order, _ := orders.GetOrderByToken(result.ConfirmationToken)
	assert.Equal(t, models.StatusCancelled, order.Status)
	assert.False(t, order.Confirmed)

	assert.Len(t, fake.edits, 1)
	assert.Contains(t, fake.edits[0].text, "отменен")
}

func TestBot_CancelAfterConfirm_IsNoop(t *testing.T) {
	b, fake, orders := newTestBot(t)
	result := placeOrder(t, orders, models.PaymentCash)

	assert.NoError(t, b.HandleUpdate(callbackUpdate(2, cbConfirm+result.ConfirmationToken)))
	assert.NoError(t, b.HandleUpdate(callbackUpdate(3, cbCancel+result.ConfirmationToken)))

	order, _ := orders.GetOrderByToken(result.ConfirmationToken)
	assert.Equal(t, models.StatusConfirmed, order.Status)
	assert.Contains(t, fake.edits[1].text, "уже обработан")
}

func TestBot_CardPaymentFlow(t *testing.T) {
	b, fake, orders := newTestBot(t)
	result := placeOrder(t, orders, models.PaymentCardOnline)

	// the summary offers the card payment sub-view instead of confirm
	assert.NoError(t, b.HandleUpdate(messageUpdate(1, "/start "+result.ConfirmationToken)))
	kb := fake.keyboards[0]
	assert.Equal(t, cbPayCard+result.ConfirmationToken, kb.buttons[0][0].CallbackData)

	assert.NoError(t, b.HandleUpdate(callbackUpdate(2, cbPayCard+result.ConfirmationToken)))
	assert.Len(t, fake.edits, 1)
	assert.Contains(t, fake.edits[0].text, "Оплата картой")
	assert.Equal(t, cbPaymentLink+result.ConfirmationToken, fake.edits[0].buttons[0][0].CallbackData)
	assert.Equal(t, cbBack+result.ConfirmationToken, fake.edits[0].buttons[1][0].CallbackData)

	assert.NoError(t, b.HandleUpdate(callbackUpdate(3, cbPaymentLink+result.ConfirmationToken)))
	assert.Len(t, fake.messages, 1)
	assert.Contains(t, fake.messages[0].text,
		fmt.Sprintf("https://shop.example.com/payment.html?order=%s&amount=%d", result.OrderNumber, result.Total))

	// payment sub-views never mutate the order
	order, _ := orders.GetOrderByToken(result.ConfirmationToken)
	assert.Equal(t, models.StatusNew, order.Status)

	// back returns to the summary
	assert.NoError(t, b.HandleUpdate(callbackUpdate(4, cbBack+result.ConfirmationToken)))
	assert.Len(t, fake.keyboards, 2)
}

func TestBot_QRPaymentFlow(t *testing.T) {
	b, fake, orders := newTestBot(t)
	result := placeOrder(t, orders, models.PaymentSBP)

	assert.NoError(t, b.HandleUpdate(messageUpdate(1, "/start "+result.ConfirmationToken)))
	kb := fake.keyboards[0]
	assert.Equal(t, cbPayQR+result.ConfirmationToken, kb.buttons[0][0].CallbackData)

	assert.NoError(t, b.HandleUpdate(callbackUpdate(2, cbPayQR+result.ConfirmationToken)))
	assert.Len(t, fake.edits, 1)
	assert.Contains(t, fake.edits[0].text, "QR")
	assert.Len(t, fake.photos, 1)
	assert.Contains(t, fake.photos[0].photoURL, "qrserver.com")

	order, _ := orders.GetOrderByToken(result.ConfirmationToken)
	assert.Equal(t, models.StatusNew, order.Status)
}

func TestBot_UnknownCallback_StillAnswered(t *testing.T) {
	b, fake, _ := newTestBot(t)

	err := b.HandleUpdate(callbackUpdate(2, "bogus_data"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"cb-2"}, fake.answered)
	assert.Empty(t, fake.messages)
	assert.Empty(t, fake.edits)
}

func TestBot_OrderCreatedNotifiesAdmin(t *testing.T) {
	b, fake, _ := newTestBot(t)

	order := &models.Order{
		OrderNumber:    "ORD-000123-001",
		CustomerName:   "Мария",
		CustomerPhone:  "+79990001122",
		DeliveryMethod: models.DeliveryPickup,
		PaymentMethod:  models.PaymentCash,
		Total:          1700,
		Status:         models.StatusNew,
		Items:          []models.OrderItem{{ProductID: 1, Quantity: 2, Price: 850}},
	}
	products := map[uint]models.Product{1: {ID: 1, Name: "Padovan GrandMix для попугаев"}}

	assert.NoError(t, b.OrderCreated(order, products))
	assert.Len(t, fake.messages, 1)
	assert.Equal(t, adminChat, fake.messages[0].chatID)
	assert.Contains(t, fake.messages[0].text, "ORD-000123-001")
	assert.Contains(t, fake.messages[0].text, "Padovan GrandMix")
	assert.Contains(t, fake.messages[0].text, "Ожидает подтверждения")
}

func TestBot_DeepLink(t *testing.T) {
	b, _, _ := newTestBot(t)
	assert.Equal(t, "https://t.me/parrot_shop_bot?start=tok-1", b.DeepLink("tok-1"))
	assert.Equal(t, "https://t.me/parrot_shop_bot", b.DeepLink(""))
}
