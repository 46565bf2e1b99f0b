package constant

import "time"

const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"

	// Transcript storage key prefix; the full key is prefix + username
	// (or "anonymous" when no username is available).
	TranscriptKeyPrefix = "chat_nec_"
	AnonymousUser       = "anonymous"

	// Per-character delay of the typing reveal.
	DefaultTypeDelay = 20 * time.Millisecond

	ChatGreeting = "Hola, somos Nec. ¿En qué puedo ayudarte hoy?"

	// User-facing fallback texts, keyed by the answer status branch that
	// produces them.
	ChatCancelledText      = "Solicitud cancelada."
	ChatFetchFailedText    = "Lo siento, no pudimos obtener una respuesta."
	ChatBadFallbackText    = "Lo siento, no pude procesar tu solicitud correctamente."
	ChatTimeoutText        = "Lo siento, la solicitud ha tardado demasiado tiempo. Por favor, inténtalo de nuevo."
	ChatUnexpectedText     = "Ha ocurrido un error inesperado. Por favor, inténtalo de nuevo."
	ChatEmptyAnswerText    = "Error inesperado."
	ChatProcessFailureText = "Error procesando tu solicitud."
)

const (
	AuthTokenCookie = "auth_token"
	UsernameCookie  = "username"
	NameCookie      = "name"
	RoleCookie      = "role"
)

const (
	AuthEventsTopic = "AUTH_EVENTS"

	EventUserLogin  = "USER_LOGIN"
	EventUserLogout = "USER_LOGOUT"
)
