package bot

import "strings"

// CommandKind enumerates the actions an update can request.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdStart
	CmdConfirm
	CmdCancel
	CmdShowCardPayment
	CmdShowQRPayment
	CmdSendPaymentLink
	CmdBack
)

// Command is a parsed update action. Token is the order confirmation
// token the command acts on; it is empty for a bare /start.
type Command struct {
	Kind  CommandKind
	Token string
}

// callback data prefixes, shared between keyboard construction and
// parsing so they can never drift apart.
const (
	cbConfirm     = "confirm_"
	cbCancel      = "cancel_"
	cbPayCard     = "pay_card_"
	cbPayQR       = "pay_qr_"
	cbPaymentLink = "send_payment_link_"
	cbBack        = "back_to_order_"
)

// ParseCallback parses inline-keyboard callback data into a Command.
// Unrecognized data yields CmdUnknown; the parse is total.
func ParseCallback(data string) Command {
	// Order matters: cbPayCard and cbPayQR share no prefix, but keep
	// the longest-prefix-first habit anyway.
	prefixes := []struct {
		prefix string
		kind   CommandKind
	}{
		{cbPaymentLink, CmdSendPaymentLink},
		{cbBack, CmdBack},
		{cbPayCard, CmdShowCardPayment},
		{cbPayQR, CmdShowQRPayment},
		{cbConfirm, CmdConfirm},
		{cbCancel, CmdCancel},
	}
	for _, p := range prefixes {
		if strings.HasPrefix(data, p.prefix) {
			return Command{Kind: p.kind, Token: strings.TrimPrefix(data, p.prefix)}
		}
	}
	return Command{Kind: CmdUnknown}
}

// ParseMessage parses a chat message into a Command. Only /start (with
// an optional deep-link token) is a command; everything else is
// CmdUnknown and gets the fallback reply.
func ParseMessage(text string) Command {
	if !strings.HasPrefix(text, "/start") {
		return Command{Kind: CmdUnknown}
	}
	parts := strings.Fields(text)
	if len(parts) > 1 {
		return Command{Kind: CmdStart, Token: parts[1]}
	}
	return Command{Kind: CmdStart}
}
