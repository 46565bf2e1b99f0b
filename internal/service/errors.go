package service

import "errors"

// Sentinel errors shared across services. The Spanish messages travel
// untouched to the API envelope so the frontend can show them directly.
var (
	ErrUserNotFound         = errors.New("Usuario no encontrado")
	ErrWrongPassword        = errors.New("Contraseña incorrecta")
	ErrEmailTaken           = errors.New("El correo electrónico ya está registrado. Por favor utilice otro.")
	ErrUsernameTaken        = errors.New("El nombre de usuario ya está registrado. Por favor utilice otro.")
	ErrEmailInUse           = errors.New("El correo electrónico ya está en uso")
	ErrConversationNotFound = errors.New("Conversación no encontrada")
)
