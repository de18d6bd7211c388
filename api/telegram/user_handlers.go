package telegram

import (
	"context"
	"fmt"

	"padelbot/domain/club"
	"padelbot/domain/pairing"
	"padelbot/domain/player"
	"padelbot/domain/validation"
	"padelbot/internal/session"
)

// showHome fetches the global ranking and renders the home screen. Once
// the aggregator has succeeded, this is a background refresh: stale-but-
// valid data stays visible instead of a loading flash.
func (h *Handlers) showHome(ctx context.Context, sess *session.Session, messageID int) {
	if err := sess.GlobalRanking.Fetch(ctx); err != nil {
		h.logger.Error("global ranking fetch failed", "chat_id", sess.ChatID, "error", err)
	}
	text, keyboard := h.formatter.FormatHome(sess.GlobalRanking.Snapshot())
	h.respond(sess.ChatID, messageID, text, keyboard)
}

// showClubs fetches the club list and renders it. The navigator state is
// untouched: listing clubs is still part of the current screen, only
// selecting one transitions.
func (h *Handlers) showClubs(ctx context.Context, sess *session.Session, messageID int) {
	if err := sess.Clubs.Fetch(ctx); err != nil {
		h.logger.Error("club fetch failed", "chat_id", sess.ChatID, "error", err)
	}
	text, keyboard := h.formatter.FormatClubList(sess.Clubs.Snapshot())
	h.respond(sess.ChatID, messageID, text, keyboard)
}

// handleClubSelection resolves the chosen club and moves the navigator to
// the categories screen.
func (h *Handlers) handleClubSelection(ctx context.Context, sess *session.Session, clubID string, messageID int) {
	snap := sess.Clubs.Snapshot()
	selected := findClub(snap.Items, clubID)
	if selected == nil {
		// The list may have been evicted by an earlier failure; re-fetch.
		if err := sess.Clubs.Fetch(ctx); err != nil {
			text, keyboard := h.formatter.FormatError("No se pudo cargar el club: "+err.Error(), "clubs", "back:main")
			h.respond(sess.ChatID, messageID, text, keyboard)
			return
		}
		selected = findClub(sess.Clubs.Snapshot().Items, clubID)
	}
	if selected == nil {
		text, keyboard := h.formatter.FormatError("Ese club ya no existe.", "clubs", "back:main")
		h.respond(sess.ChatID, messageID, text, keyboard)
		return
	}

	sess.Nav.SelectClub(selected)
	h.showCategories(sess, messageID)
}

func (h *Handlers) showCategories(sess *session.Session, messageID int) {
	c := sess.Nav.SelectedClub()
	if c == nil {
		sess.Nav.GoHome()
		h.showHome(context.Background(), sess, messageID)
		return
	}
	text, keyboard := h.formatter.FormatCategories(c)
	h.respond(sess.ChatID, messageID, text, keyboard)
}

// handleCategorySelection moves to the internal ranking screen and fetches
// the (club, category) ranking.
func (h *Handlers) handleCategorySelection(ctx context.Context, sess *session.Session, categoryID string, messageID int) {
	c := sess.Nav.SelectedClub()
	if c == nil {
		sess.Nav.GoHome()
		h.showHome(ctx, sess, messageID)
		return
	}
	cat := c.FindCategory(categoryID)
	if cat == nil {
		text, keyboard := h.formatter.FormatError("Esa categoría ya no existe.", "", "back:cats")
		h.respond(sess.ChatID, messageID, text, keyboard)
		return
	}
	if err := sess.Nav.SelectCategory(cat); err != nil {
		h.reply(sess.ChatID, "⚠️ "+err.Error())
		return
	}

	sess.InternalRanking.SetFilters(map[string]string{
		session.FilterClub:     c.ID,
		session.FilterCategory: cat.ID,
	})
	h.showInternalRanking(ctx, sess, messageID)
}

func (h *Handlers) showInternalRanking(ctx context.Context, sess *session.Session, messageID int) {
	c := sess.Nav.SelectedClub()
	cat := sess.Nav.SelectedCategory()
	if c == nil || cat == nil {
		sess.Nav.GoHome()
		h.showHome(ctx, sess, messageID)
		return
	}
	if err := sess.InternalRanking.Fetch(ctx); err != nil {
		h.logger.Error("internal ranking fetch failed",
			"chat_id", sess.ChatID, "club", c.ID, "category", cat.ID, "error", err)
	}
	text, keyboard := h.formatter.FormatInternalRanking(c, cat, sess.InternalRanking.Snapshot())
	h.respond(sess.ChatID, messageID, text, keyboard)
}

func (h *Handlers) showTournaments(ctx context.Context, sess *session.Session, messageID int) {
	if err := sess.Tournaments.Fetch(ctx); err != nil {
		h.logger.Error("tournament fetch failed", "chat_id", sess.ChatID, "error", err)
	}
	text, keyboard := h.formatter.FormatTournaments(sess.Tournaments.Snapshot())
	h.respond(sess.ChatID, messageID, text, keyboard)
}

func (h *Handlers) handleTournamentDetails(ctx context.Context, sess *session.Session, id string, messageID int) {
	t, err := h.tournaments.Get(ctx, id)
	if err != nil {
		text, keyboard := h.formatter.FormatError("No se pudo cargar el torneo: "+err.Error(), "tour:"+id, "tournaments")
		h.respond(sess.ChatID, messageID, text, keyboard)
		return
	}
	text, keyboard := h.formatter.FormatTournamentDetails(t)
	h.respond(sess.ChatID, messageID, text, keyboard)
}

func (h *Handlers) showPlayers(ctx context.Context, sess *session.Session, messageID int) {
	if err := sess.Players.Fetch(ctx); err != nil {
		h.logger.Error("player search failed", "chat_id", sess.ChatID, "error", err)
	}
	text, keyboard := h.formatter.FormatPlayers(sess.Players.Snapshot())
	h.respond(sess.ChatID, messageID, text, keyboard)
}

func (h *Handlers) handlePlayerDetails(ctx context.Context, sess *session.Session, id string, messageID int) {
	p, err := h.players.Get(ctx, id)
	if err != nil {
		text, keyboard := h.formatter.FormatError("No se pudo cargar el jugador: "+err.Error(), "player:"+id, "players")
		h.respond(sess.ChatID, messageID, text, keyboard)
		return
	}
	text, keyboard := h.formatter.FormatPlayerDetails(p)
	h.respond(sess.ChatID, messageID, text, keyboard)
}

// handlePairProposal validates and creates a pairing between the logged-in
// user's player and the viewed player. arg is "drive:{partnerID}" or
// "reves:{partnerID}", naming the position the proposer takes. Validation
// failures never reach the backend.
func (h *Handlers) handlePairProposal(ctx context.Context, sess *session.Session, arg string, messageID int) {
	var pos pairing.Position
	var partnerID string
	switch {
	case len(arg) > 6 && arg[:6] == "drive:":
		pos, partnerID = pairing.PositionDrive, arg[6:]
	case len(arg) > 6 && arg[:6] == "reves:":
		pos, partnerID = pairing.PositionBack, arg[6:]
	default:
		return
	}

	authSess, err := h.auth.Current(ctx, sess.ChatID)
	if err != nil {
		h.reply(sess.ChatID, "⚠️ No se pudo leer tu sesión: "+err.Error())
		return
	}
	if authSess == nil {
		text, keyboard := h.formatter.FormatAuthMenu()
		h.respond(sess.ChatID, messageID, text, keyboard)
		return
	}
	if authSess.User.PlayerID == "" {
		h.reply(sess.ChatID, "⚠️ Tu cuenta no está vinculada a un jugador.")
		return
	}

	me, err := h.players.Get(ctx, authSess.User.PlayerID)
	if err != nil {
		h.reply(sess.ChatID, "⚠️ No se pudo cargar tu jugador: "+err.Error())
		return
	}
	partner, err := h.players.Get(ctx, partnerID)
	if err != nil {
		h.reply(sess.ChatID, "⚠️ No se pudo cargar el jugador: "+err.Error())
		return
	}

	drive, back := me, partner
	if pos == pairing.PositionBack {
		drive, back = partner, me
	}

	p, err := h.pairings.Create(ctx, authSess.Token, drive, back)
	if err != nil {
		h.reply(sess.ChatID, "⚠️ "+err.Error())
		return
	}
	h.reply(sess.ChatID, fmt.Sprintf("✅ Pareja creada: %s (drive) / %s (revés)", p.DriveName, p.BackName))
}

// showProfile renders the account screen, or the sign-in options when the
// chat has no session.
func (h *Handlers) showProfile(ctx context.Context, sess *session.Session, messageID int) {
	authSess, err := h.auth.Current(ctx, sess.ChatID)
	if err != nil {
		text, keyboard := h.formatter.FormatError("No se pudo leer tu sesión: "+err.Error(), "profile", "back:main")
		h.respond(sess.ChatID, messageID, text, keyboard)
		return
	}
	if authSess == nil {
		text, keyboard := h.formatter.FormatAuthMenu()
		h.respond(sess.ChatID, messageID, text, keyboard)
		return
	}

	var p *player.Player
	if authSess.User.PlayerID != "" {
		p, err = h.players.Get(ctx, authSess.User.PlayerID)
		if err != nil {
			h.logger.Warn("profile player fetch failed", "chat_id", sess.ChatID, "error", err)
			p = nil
		}
	}
	text, keyboard := h.formatter.FormatProfile(authSess, p)
	h.respond(sess.ChatID, messageID, text, keyboard)
}

func (h *Handlers) startProfileEdit(ctx context.Context, chatID int64) {
	authSess, err := h.auth.Current(ctx, chatID)
	if err != nil || authSess == nil || authSess.User.PlayerID == "" {
		h.reply(chatID, "⚠️ Necesitás una sesión con jugador vinculado para editar el perfil.")
		return
	}
	h.setInput(chatID, &inputState{kind: inputProfileName, playerID: authSess.User.PlayerID})
	h.reply(chatID, "✏️ Escribí tu nombre (o \"-\" para dejarlo como está):")
}

func (h *Handlers) handleLogout(ctx context.Context, sess *session.Session, messageID int) {
	if err := h.auth.Logout(ctx, sess.ChatID); err != nil {
		h.reply(sess.ChatID, "⚠️ No se pudo cerrar la sesión: "+err.Error())
		return
	}
	sess.Nav.GoHome()
	h.reply(sess.ChatID, "👋 Sesión cerrada.")
	h.showHome(ctx, sess, messageID)
}

// handleInput advances the chat's pending multi-step flow with the text
// just received.
func (h *Handlers) handleInput(ctx context.Context, msg *Message, st *inputState) {
	chatID := msg.ChatID
	sess := h.sessions.Get(chatID)

	switch st.kind {
	case inputSearchTerm:
		h.clearInput(chatID)
		sess.Players.SetSearch(msg.Text)
		h.showPlayers(ctx, sess, 0)

	case inputLoginIdentifier:
		st.identifier = msg.Text
		st.kind = inputLoginPassword
		h.reply(chatID, "🔑 Ahora escribí tu contraseña:")

	case inputLoginPassword:
		h.clearInput(chatID)
		authSess, err := h.auth.Login(ctx, chatID, st.identifier, msg.Text)
		if err != nil {
			h.reply(chatID, "⚠️ No se pudo iniciar sesión: "+err.Error())
			return
		}
		h.reply(chatID, "✅ Hola, "+authSess.User.Username+"!")
		h.showProfile(ctx, sess, 0)

	case inputRegisterUsername:
		st.username = msg.Text
		st.kind = inputRegisterEmail
		h.reply(chatID, "📝 Tu email:")

	case inputRegisterEmail:
		st.email = msg.Text
		st.kind = inputRegisterPassword
		h.reply(chatID, "📝 Elegí una contraseña:")

	case inputRegisterPassword:
		st.password = msg.Text
		st.kind = inputRegisterConfirm
		h.reply(chatID, "📝 Repetí la contraseña:")

	case inputRegisterConfirm:
		// Mismatched confirmation is rejected client-side; the flow stays
		// on this step so the user can retry.
		authSess, err := h.auth.Register(ctx, chatID, st.username, st.email, st.password, msg.Text)
		if err != nil {
			if validation.Is(err) {
				h.reply(chatID, "⚠️ "+err.Error()+" Repetí la contraseña:")
				return
			}
			h.clearInput(chatID)
			h.reply(chatID, "⚠️ No se pudo crear la cuenta: "+err.Error())
			return
		}
		h.clearInput(chatID)
		h.reply(chatID, "✅ Cuenta creada. Hola, "+authSess.User.Username+"! Revisá tu email para confirmarla.")

	case inputForgotEmail:
		h.clearInput(chatID)
		if err := h.auth.ForgotPassword(ctx, msg.Text); err != nil {
			h.reply(chatID, "⚠️ "+err.Error())
			return
		}
		h.reply(chatID, "✉️ Listo, revisá tu email para restablecer la contraseña.")

	case inputConfirmToken:
		h.clearInput(chatID)
		if err := h.auth.ConfirmEmail(ctx, msg.Text); err != nil {
			h.reply(chatID, "⚠️ No se pudo confirmar el email: "+err.Error())
			return
		}
		h.reply(chatID, "✅ Email confirmado, ya podés iniciar sesión.")

	case inputFeedback:
		authSess, err := h.auth.Current(ctx, chatID)
		if err != nil {
			h.clearInput(chatID)
			h.reply(chatID, "⚠️ No se pudo leer tu sesión: "+err.Error())
			return
		}
		token := ""
		if authSess != nil {
			token = authSess.Token
		}
		if err := h.feedback.Submit(ctx, token, msg.Text); err != nil {
			if validation.Is(err) {
				h.reply(chatID, "⚠️ "+err.Error())
				return
			}
			h.clearInput(chatID)
			h.reply(chatID, "⚠️ No se pudo enviar la sugerencia: "+err.Error())
			return
		}
		h.clearInput(chatID)
		h.reply(chatID, "💬 ¡Gracias por tu sugerencia!")

	case inputProfileName:
		if msg.Text != "-" {
			st.profile.Name = msg.Text
		}
		st.kind = inputProfileSurname
		h.reply(chatID, "✏️ Tu apellido (o \"-\" para dejarlo como está):")

	case inputProfileSurname:
		h.clearInput(chatID)
		if msg.Text != "-" {
			st.profile.Surname = msg.Text
		}
		authSess, err := h.auth.Current(ctx, chatID)
		if err != nil || authSess == nil {
			h.reply(chatID, "⚠️ Tu sesión expiró, iniciá sesión de nuevo.")
			return
		}
		if _, err := h.players.UpdateProfile(ctx, authSess.Token, st.playerID, st.profile); err != nil {
			h.reply(chatID, "⚠️ No se pudo guardar el perfil: "+err.Error())
			return
		}
		h.reply(chatID, "✅ Perfil actualizado.")
		h.showProfile(ctx, sess, 0)

	default:
		h.clearInput(chatID)
		h.reply(chatID, "Usá /start para abrir el menú")
	}
}

func findClub(items []*club.Club, id string) *club.Club {
	for _, c := range items {
		if c.ID == id {
			return c
		}
	}
	return nil
}
