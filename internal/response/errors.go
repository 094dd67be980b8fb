package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbiddenRole        ErrCode = "FORBIDDEN_ROLE"
	ErrInvalidEnrollmentKey ErrCode = "INVALID_ENROLLMENT_KEY"
	ErrNotCourseInstructor  ErrCode = "NOT_COURSE_INSTRUCTOR"

	// ─── Signup ────────────────────────────────────────────────────────
	ErrEmailTaken      ErrCode = "EMAIL_TAKEN"
	ErrPasswordTooLong ErrCode = "PASSWORD_TOO_LONG"
	ErrInvalidRole     ErrCode = "INVALID_ROLE"
	ErrSignupFailed    ErrCode = "SIGNUP_FAILED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrConflict        ErrCode = "CONFLICT"
	ErrAlreadyEnrolled ErrCode = "ALREADY_ENROLLED"
	ErrNotEnrolled     ErrCode = "NOT_ENROLLED"

	// ─── Integrity ─────────────────────────────────────────────────────
	// A credential exists with no matching role profile. Server-side
	// invariant violation, never the caller's fault.
	ErrProfileMissing ErrCode = "PROFILE_MISSING"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid email or password."
	case ErrTokenRequired:
		return "Authentication token required."
	case ErrTokenInvalid:
		return "Authentication token is not valid."
	case ErrTokenExpired:
		return "Authentication token has expired. Please log in again."
	case ErrForbiddenRole:
		return "Your account role does not permit access to this resource."
	case ErrInvalidEnrollmentKey:
		return "Incorrect enrollment key for the requested role."
	case ErrNotCourseInstructor:
		return "You are not an authorized instructor for this course."
	case ErrEmailTaken:
		return "Email already registered."
	case ErrPasswordTooLong:
		return "Password exceeds the maximum supported length."
	case ErrInvalidRole:
		return "Unknown account role."
	case ErrSignupFailed:
		return "Signup could not be completed. Please try again."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."
	case ErrAlreadyEnrolled:
		return "You are already enrolled in this course."
	case ErrNotEnrolled:
		return "You are not enrolled in this course."
	case ErrProfileMissing:
		return "Account profile is missing. Please contact support."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
