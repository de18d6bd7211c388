package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"padelbot/domain/auth"
	"padelbot/domain/club"
	"padelbot/domain/feedback"
	"padelbot/domain/pairing"
	"padelbot/domain/player"
	"padelbot/domain/tournament"
	"padelbot/internal/session"
)

// Handlers maps Telegram updates to service calls and store operations,
// and renders the resulting view for the chat's navigator state.
type Handlers struct {
	clubs       *club.Service
	players     *player.Service
	tournaments *tournament.Service
	pairings    *pairing.Service
	auth        *auth.Service
	feedback    *feedback.Service
	sessions    *session.Manager
	client      *Client
	formatter   *Formatter
	logger      *slog.Logger

	mu     sync.Mutex
	inputs map[int64]*inputState
}

// NewHandlers creates the full handler set.
func NewHandlers(
	clubs *club.Service,
	players *player.Service,
	tournaments *tournament.Service,
	pairings *pairing.Service,
	authSvc *auth.Service,
	feedbackSvc *feedback.Service,
	sessions *session.Manager,
	client *Client,
) *Handlers {
	return &Handlers{
		clubs:       clubs,
		players:     players,
		tournaments: tournaments,
		pairings:    pairings,
		auth:        authSvc,
		feedback:    feedbackSvc,
		sessions:    sessions,
		client:      client,
		formatter:   NewFormatter(),
		logger:      slog.Default(),
		inputs:      make(map[int64]*inputState),
	}
}

// HandleUpdate dispatches one Telegram update.
func (h *Handlers) HandleUpdate(update *Update) {
	if update.Message != nil {
		h.HandleMessage(update.Message)
	}
	if update.CallbackQuery != nil {
		h.HandleCallback(update.CallbackQuery)
	}
}

// HandleMessage handles text messages: commands, or the next step of a
// pending multi-step flow.
func (h *Handlers) HandleMessage(msg *Message) {
	if msg == nil {
		return
	}
	ctx := context.Background()

	switch {
	case msg.Text == "/start":
		h.clearInput(msg.ChatID)
		sess := h.sessions.Get(msg.ChatID)
		sess.Nav.GoHome()
		h.showHome(ctx, sess, 0)
	case strings.HasPrefix(msg.Text, "/"):
		h.reply(msg.ChatID, "Usá /start para abrir el menú")
	default:
		if st := h.getInput(msg.ChatID); st != nil {
			h.handleInput(ctx, msg, st)
			return
		}
		h.reply(msg.ChatID, "Usá /start para abrir el menú")
	}
}

// HandleCallback handles button presses.
func (h *Handlers) HandleCallback(cb *CallbackQuery) {
	if cb == nil || cb.Message == nil {
		return
	}
	if err := h.client.AnswerCallbackQuery(cb.ID); err != nil {
		h.logger.Error("failed to answer callback query", "callback_id", cb.ID, "error", err)
	}

	ctx := context.Background()
	sess := h.sessions.Get(cb.Message.ChatID)
	chatID := cb.Message.ChatID
	messageID := cb.Message.MessageID

	// A button press cancels any half-finished text flow.
	h.clearInput(chatID)

	switch cb.Data {
	case "back:main", "retry:home":
		sess.Nav.GoHome()
		h.showHome(ctx, sess, messageID)
	case "clubs", "retry:clubs":
		h.showClubs(ctx, sess, messageID)
	case "back:cats":
		if err := sess.Nav.Back(); err != nil {
			sess.Nav.GoHome()
			h.showHome(ctx, sess, messageID)
			return
		}
		h.showCategories(sess, messageID)
	case "tournaments", "retry:tournaments":
		sess.Nav.OpenTournaments()
		h.showTournaments(ctx, sess, messageID)
	case "search":
		h.setInput(chatID, &inputState{kind: inputSearchTerm})
		h.reply(chatID, "🔎 Escribí el nombre o apellido a buscar:")
	case "players", "retry:players":
		h.showPlayers(ctx, sess, messageID)
	case "retry:internal":
		h.showInternalRanking(ctx, sess, messageID)
	case "profile":
		h.showProfile(ctx, sess, messageID)
	case "profile:edit":
		h.startProfileEdit(ctx, chatID)
	case "logout":
		h.handleLogout(ctx, sess, messageID)
	case "login":
		h.setInput(chatID, &inputState{kind: inputLoginIdentifier})
		h.reply(chatID, "🔑 Escribí tu usuario o email:")
	case "register":
		h.setInput(chatID, &inputState{kind: inputRegisterUsername})
		h.reply(chatID, "📝 Elegí un nombre de usuario:")
	case "forgot":
		h.setInput(chatID, &inputState{kind: inputForgotEmail})
		h.reply(chatID, "✉️ Escribí el email de tu cuenta:")
	case "confirmemail":
		h.setInput(chatID, &inputState{kind: inputConfirmToken})
		h.reply(chatID, "✉️ Pegá el token de confirmación que te llegó por email:")
	case "feedback":
		h.setInput(chatID, &inputState{kind: inputFeedback})
		h.reply(chatID, "💬 Contanos tu sugerencia (entre 10 y 500 caracteres):")
	case "noop":
		// Pagination indicator, nothing to do.
	default:
		h.handleDynamicCallback(ctx, sess, cb)
	}
}

// handleDynamicCallback routes prefixed callbacks carrying an argument.
func (h *Handlers) handleDynamicCallback(ctx context.Context, sess *session.Session, cb *CallbackQuery) {
	chatID := cb.Message.ChatID
	messageID := cb.Message.MessageID
	data := cb.Data

	switch {
	case strings.HasPrefix(data, "club:"):
		h.handleClubSelection(ctx, sess, strings.TrimPrefix(data, "club:"), messageID)
	case strings.HasPrefix(data, "cat:"):
		h.handleCategorySelection(ctx, sess, strings.TrimPrefix(data, "cat:"), messageID)
	case strings.HasPrefix(data, "tour:"):
		h.handleTournamentDetails(ctx, sess, strings.TrimPrefix(data, "tour:"), messageID)
	case strings.HasPrefix(data, "tpage:"):
		h.handlePageChange(ctx, sess, sess.Tournaments.SetPage, strings.TrimPrefix(data, "tpage:"), messageID, h.showTournaments)
	case strings.HasPrefix(data, "ppage:"):
		h.handlePageChange(ctx, sess, sess.Players.SetPage, strings.TrimPrefix(data, "ppage:"), messageID, h.showPlayers)
	case strings.HasPrefix(data, "pfilter:"):
		sess.Players.SetFilters(map[string]string{session.FilterGender: strings.TrimPrefix(data, "pfilter:")})
		h.showPlayers(ctx, sess, messageID)
	case strings.HasPrefix(data, "player:"):
		h.handlePlayerDetails(ctx, sess, strings.TrimPrefix(data, "player:"), messageID)
	case strings.HasPrefix(data, "pairpos:"):
		h.handlePairProposal(ctx, sess, strings.TrimPrefix(data, "pairpos:"), messageID)
	default:
		h.logger.Warn("unknown callback", "data", data, "chat_id", chatID)
	}
}

// handlePageChange parses the page argument, applies it to the store and
// re-renders. An out-of-range page is reported inline, nothing is fetched.
func (h *Handlers) handlePageChange(
	ctx context.Context,
	sess *session.Session,
	setPage func(int) error,
	arg string,
	messageID int,
	render func(context.Context, *session.Session, int),
) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		h.logger.Warn("bad page argument", "arg", arg)
		return
	}
	if err := setPage(n); err != nil {
		h.reply(sess.ChatID, "⚠️ "+err.Error())
		return
	}
	render(ctx, sess, messageID)
}

// respond edits the originating message when messageID is set, otherwise
// sends a new one.
func (h *Handlers) respond(chatID int64, messageID int, text string, keyboard *InlineKeyboardMarkup) {
	var err error
	if messageID != 0 {
		err = h.client.EditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	} else {
		err = h.client.SendMessageWithKeyboard(chatID, text, keyboard)
	}
	if err != nil {
		h.logger.Error("failed to render view", "chat_id", chatID, "error", err)
	}
}

func (h *Handlers) reply(chatID int64, text string) {
	if err := h.client.SendMessage(chatID, text); err != nil {
		h.logger.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}

// Pending multi-step input, one per chat.

type inputKind int

const (
	inputSearchTerm inputKind = iota + 1
	inputLoginIdentifier
	inputLoginPassword
	inputRegisterUsername
	inputRegisterEmail
	inputRegisterPassword
	inputRegisterConfirm
	inputForgotEmail
	inputConfirmToken
	inputFeedback
	inputProfileName
	inputProfileSurname
)

type inputState struct {
	kind inputKind

	// Accumulated across steps.
	identifier string
	username   string
	email      string
	password   string
	profile    player.ProfileUpdate
	playerID   string
}

func (h *Handlers) setInput(chatID int64, st *inputState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inputs[chatID] = st
}

func (h *Handlers) getInput(chatID int64) *inputState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inputs[chatID]
}

func (h *Handlers) clearInput(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.inputs, chatID)
}
