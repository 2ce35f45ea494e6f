package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		data     string
		expected Command
	}{
		{"confirm_abc-123", Command{Kind: CmdConfirm, Token: "abc-123"}},
		{"cancel_abc-123", Command{Kind: CmdCancel, Token: "abc-123"}},
		{"pay_card_abc-123", Command{Kind: CmdShowCardPayment, Token: "abc-123"}},
		{"pay_qr_abc-123", Command{Kind: CmdShowQRPayment, Token: "abc-123"}},
		{"send_payment_link_abc-123", Command{Kind: CmdSendPaymentLink, Token: "abc-123"}},
		{"back_to_order_abc-123", Command{Kind: CmdBack, Token: "abc-123"}},
		{"confirm_", Command{Kind: CmdConfirm, Token: ""}},
		{"", Command{Kind: CmdUnknown}},
		{"something_else", Command{Kind: CmdUnknown}},
		{"CONFIRM_abc", Command{Kind: CmdUnknown}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseCallback(tt.data), "data: %q", tt.data)
	}
}

func TestParseMessage(t *testing.T) {
	tests := []struct {
		text     string
		expected Command
	}{
		{"/start", Command{Kind: CmdStart}},
		{"/start abc-123", Command{Kind: CmdStart, Token: "abc-123"}},
		{"/start   abc-123  ", Command{Kind: CmdStart, Token: "abc-123"}},
		{"hello", Command{Kind: CmdUnknown}},
		{"", Command{Kind: CmdUnknown}},
		{"start abc", Command{Kind: CmdUnknown}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseMessage(tt.text), "text: %q", tt.text)
	}
}
