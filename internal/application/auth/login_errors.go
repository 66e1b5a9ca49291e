package auth

// LoginError mensaje de error de login que el frontend muestra tal cual.
type LoginError struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Códigos de error de login conocidos. Los textos son strings de producto y
// se entregan en inglés; el frontend los renderiza sin traducir.
var loginErrors = map[string]LoginError{
	"no-organization": {
		Code:    "no-organization",
		Title:   "Organization Setup Required",
		Message: "Your account is not linked to an organization yet. Contact your administrator to be added.",
	},
	"invalid-credentials": {
		Code:    "invalid-credentials",
		Title:   "Invalid Credentials",
		Message: "The email or password you entered is incorrect.",
	},
	"account-suspended": {
		Code:    "account-suspended",
		Title:   "Account Suspended",
		Message: "This account has been suspended. Contact support for details.",
	},
	"oauth-failed": {
		Code:    "oauth-failed",
		Title:   "Sign-in Failed",
		Message: "We could not complete the sign-in with your identity provider. Try again.",
	},
	"session-expired": {
		Code:    "session-expired",
		Title:   "Session Expired",
		Message: "Your session has expired. Sign in again to continue.",
	},
}

// genericLoginError respuesta para códigos no reconocidos.
var genericLoginError = LoginError{
	Code:    "unknown",
	Title:   "Sign-in Error",
	Message: "Something went wrong while signing in. Try again.",
}

// MessageForErrorCode mapea un código de error de login a su mensaje.
// Códigos desconocidos reciben el mensaje genérico (nunca se filtra el código crudo).
func MessageForErrorCode(code string) LoginError {
	if e, ok := loginErrors[code]; ok {
		return e
	}
	return genericLoginError
}
