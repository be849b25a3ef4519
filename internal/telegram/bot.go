// Package telegram is the chat front-end: it maps button presses and
// commands onto tracker operations and renders the replies. Check Out is a
// two-step flow: the instant is captured when the button is pressed, the
// session closes once the activity text arrives.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/aminrezaei/worklog/internal/calendar"
	"github.com/aminrezaei/worklog/internal/tracker"
)

const (
	buttonCheckIn  = "⏰ Check In"
	buttonCheckOut = "🏁 Check Out"
)

var mainKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(buttonCheckIn),
		tgbotapi.NewKeyboardButton(buttonCheckOut),
	),
)

// Bot runs the long-polling update loop and the per-chat check-out flow.
type Bot struct {
	api     *tgbotapi.BotAPI
	tracker *tracker.Tracker
	log     zerolog.Logger

	// send and clock are swappable for tests.
	send  func(chatID int64, text string, keyboard bool) error
	clock func() time.Time

	mu      sync.Mutex
	pending map[int64]time.Time // chat id -> captured check-out instant
}

// New wires a Bot over an authorized Telegram API client.
func New(api *tgbotapi.BotAPI, trk *tracker.Tracker, log zerolog.Logger) *Bot {
	b := &Bot{
		api:     api,
		tracker: trk,
		log:     log,
		clock:   time.Now,
		pending: make(map[int64]time.Time),
	}
	b.send = b.sendAPI
	return b
}

func (b *Bot) sendAPI(chatID int64, text string, keyboard bool) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard {
		msg.ReplyMarkup = mainKeyboard
	}
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	return nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)
	b.log.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}
	userID := strconv.FormatInt(msg.From.ID, 10)
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	var err error
	switch {
	case strings.HasPrefix(text, "/start"):
		err = b.send(chatID, "Hello! Use the buttons below to record your work hours.", true)
	case strings.HasPrefix(text, "/stats"):
		err = b.replyStats(ctx, chatID, userID)
	case text == buttonCheckIn:
		err = b.handleCheckIn(ctx, chatID, userID)
	case text == buttonCheckOut:
		err = b.handleCheckOut(chatID, userID)
	default:
		err = b.handleActivity(ctx, chatID, userID, text)
	}
	if err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("handling message")
	}
}

func (b *Bot) handleCheckIn(ctx context.Context, chatID int64, userID string) error {
	civil, err := b.tracker.CheckIn(ctx, userID, b.clock())
	switch {
	case errors.Is(err, tracker.ErrAlreadyOpen):
		return b.send(chatID, "⚠️ You are already checked in. Check out first.", true)
	case err != nil:
		b.log.Error().Err(err).Str("user_id", userID).Msg("check-in failed")
		return b.send(chatID, "An error occurred, please try again.", true)
	}
	return b.send(chatID, fmt.Sprintf("✅ Check-in recorded at %s.", civil.Clock), true)
}

func (b *Bot) handleCheckOut(chatID int64, userID string) error {
	if _, ok := b.tracker.Open(userID); !ok {
		return b.send(chatID, "⚠️ You need to check in first!", true)
	}
	b.mu.Lock()
	b.pending[chatID] = b.clock()
	b.mu.Unlock()
	return b.send(chatID, "🏁 Check-out noted.\n\nPlease enter your activity for this session.", false)
}

func (b *Bot) handleActivity(ctx context.Context, chatID int64, userID, activity string) error {
	b.mu.Lock()
	at, ok := b.pending[chatID]
	b.mu.Unlock()
	if !ok {
		return b.send(chatID, "Use the buttons below to check in or out.", true)
	}

	rec, err := b.tracker.CheckOut(ctx, userID, at, activity)
	switch {
	case errors.Is(err, tracker.ErrEmptyActivity):
		return b.send(chatID, "Please enter a non-empty activity description.", false)
	case errors.Is(err, tracker.ErrNoOpenSession):
		b.clearPending(chatID)
		return b.send(chatID, "⚠️ You need to check in first!", true)
	case err != nil:
		// Persistence failure: the session stays open, keep the pending
		// instant so resending the activity retries the same check-out.
		b.log.Error().Err(err).Str("user_id", userID).Msg("check-out failed")
		return b.send(chatID, "⚠️ Could not save your session, please send the activity again.", false)
	}
	b.clearPending(chatID)

	summary := fmt.Sprintf("✅ Session recorded.\n🕘 %s → %s\n⏱ Duration: %s",
		rec.CheckIn, rec.CheckOut, rec.Duration)
	if err := b.send(chatID, summary, true); err != nil {
		return err
	}
	return b.replyStats(ctx, chatID, userID)
}

func (b *Bot) replyStats(ctx context.Context, chatID int64, userID string) error {
	stats, err := b.tracker.MonthlyStats(ctx, userID, b.clock())
	if err != nil {
		b.log.Error().Err(err).Str("user_id", userID).Msg("fetching stats")
		return b.send(chatID, "An error occurred while fetching stats.", true)
	}
	text := fmt.Sprintf(
		"📊 Stats for %s\n\n🕒 Total Work Hours: %s\n📅 Worked Days: %d\n💵 Current Salary: $%s\n\n📈 Expected Salary (8hr/day): $%s\n🔮 Projected Month Salary: $%s",
		calendar.MonthName(stats.Month),
		stats.Total,
		stats.WorkedDays,
		groupDigits(stats.CurrentSalary),
		groupDigits(stats.ExpectedSalary),
		groupDigits(stats.ProjectedSalary),
	)
	return b.send(chatID, text, true)
}

func (b *Bot) clearPending(chatID int64) {
	b.mu.Lock()
	delete(b.pending, chatID)
	b.mu.Unlock()
}

// groupDigits formats n with thousands separators.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
