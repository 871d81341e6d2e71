package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// Output is a message the bot sent or edited
type Output struct {
	Text   string
	Markup *tele.ReplyMarkup
}

// FakeContext records what a handler does with a telebot context.
// Methods it does not override panic through the nil embedded Context.
type FakeContext struct {
	tele.Context

	User      *tele.User
	InputText string
	Query     *tele.Callback
	EditErr   error

	Sent      []Output
	Edited    []Output
	Responses []*tele.CallbackResponse

	store map[string]any
}

// NewTextContext creates a context for a text message from userID
func NewTextContext(userID int64, text string) *FakeContext {
	return &FakeContext{
		User:      &tele.User{ID: userID},
		InputText: text,
	}
}

// NewCallbackContext creates a context for an inline button press
func NewCallbackContext(userID int64, data string) *FakeContext {
	return &FakeContext{
		User:  &tele.User{ID: userID},
		Query: &tele.Callback{ID: "cb-1", Data: "\f" + data},
	}
}

func (f *FakeContext) Sender() *tele.User {
	return f.User
}

func (f *FakeContext) Text() string {
	return f.InputText
}

func (f *FakeContext) Callback() *tele.Callback {
	return f.Query
}

func (f *FakeContext) Send(what any, opts ...any) error {
	f.Sent = append(f.Sent, output(what, opts))
	return nil
}

func (f *FakeContext) Edit(what any, opts ...any) error {
	if f.EditErr != nil {
		return f.EditErr
	}
	f.Edited = append(f.Edited, output(what, opts))
	return nil
}

func (f *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	f.Responses = append(f.Responses, resp...)
	return nil
}

func (f *FakeContext) Get(key string) any {
	return f.store[key]
}

func (f *FakeContext) Set(key string, val any) {
	if f.store == nil {
		f.store = make(map[string]any)
	}
	f.store[key] = val
}

// Last returns the most recent sent or edited output
func (f *FakeContext) Last() Output {
	if len(f.Edited) > 0 && len(f.Sent) == 0 {
		return f.Edited[len(f.Edited)-1]
	}
	if len(f.Sent) > 0 {
		return f.Sent[len(f.Sent)-1]
	}
	return Output{}
}

// Buttons returns the callback unique of every inline button in o
func (o Output) Buttons() []string {
	if o.Markup == nil {
		return nil
	}
	var data []string
	for _, row := range o.Markup.InlineKeyboard {
		for _, btn := range row {
			if btn.Unique != "" {
				data = append(data, btn.Unique)
				continue
			}
			data = append(data, btn.Data)
		}
	}
	return data
}

func output(what any, opts []any) Output {
	out := Output{}
	if text, ok := what.(string); ok {
		out.Text = text
	}
	for _, opt := range opts {
		if markup, ok := opt.(*tele.ReplyMarkup); ok {
			out.Markup = markup
		}
	}
	return out
}
