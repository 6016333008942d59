// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorCode is a structured error code reported by the signaling server.
// Codes arrive only as data inside specific messages (Error,
// AuthenticationError, RoomJoinFailed and friends) and serialize as
// UPPER_SNAKE_CASE strings on the wire.
type ErrorCode string

// Authentication errors.
const (
	ErrCodeUnauthorized              ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken              ErrorCode = "INVALID_TOKEN"
	ErrCodeAuthenticationRequired    ErrorCode = "AUTHENTICATION_REQUIRED"
	ErrCodeInvalidAppID              ErrorCode = "INVALID_APP_ID"
	ErrCodeAppIDExpired              ErrorCode = "APP_ID_EXPIRED"
	ErrCodeAppIDRevoked              ErrorCode = "APP_ID_REVOKED"
	ErrCodeAppIDSuspended            ErrorCode = "APP_ID_SUSPENDED"
	ErrCodeMissingAppID              ErrorCode = "MISSING_APP_ID"
	ErrCodeAuthenticationTimeout     ErrorCode = "AUTHENTICATION_TIMEOUT"
	ErrCodeSDKVersionUnsupported     ErrorCode = "SDK_VERSION_UNSUPPORTED"
	ErrCodeUnsupportedGameDataFormat ErrorCode = "UNSUPPORTED_GAME_DATA_FORMAT"
)

// Validation errors.
const (
	ErrCodeInvalidInput      ErrorCode = "INVALID_INPUT"
	ErrCodeInvalidGameName   ErrorCode = "INVALID_GAME_NAME"
	ErrCodeInvalidRoomCode   ErrorCode = "INVALID_ROOM_CODE"
	ErrCodeInvalidPlayerName ErrorCode = "INVALID_PLAYER_NAME"
	ErrCodeInvalidMaxPlayers ErrorCode = "INVALID_MAX_PLAYERS"
	ErrCodeMessageTooLarge   ErrorCode = "MESSAGE_TOO_LARGE"
)

// Room errors.
const (
	ErrCodeRoomNotFound            ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeRoomFull                ErrorCode = "ROOM_FULL"
	ErrCodeAlreadyInRoom           ErrorCode = "ALREADY_IN_ROOM"
	ErrCodeNotInRoom               ErrorCode = "NOT_IN_ROOM"
	ErrCodeRoomCreationFailed      ErrorCode = "ROOM_CREATION_FAILED"
	ErrCodeMaxRoomsPerGameExceeded ErrorCode = "MAX_ROOMS_PER_GAME_EXCEEDED"
	ErrCodeInvalidRoomState        ErrorCode = "INVALID_ROOM_STATE"
)

// Authority errors.
const (
	ErrCodeAuthorityNotSupported ErrorCode = "AUTHORITY_NOT_SUPPORTED"
	ErrCodeAuthorityConflict     ErrorCode = "AUTHORITY_CONFLICT"
	ErrCodeAuthorityDenied       ErrorCode = "AUTHORITY_DENIED"
)

// Rate limiting errors.
const (
	ErrCodeRateLimitExceeded  ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeTooManyConnections ErrorCode = "TOO_MANY_CONNECTIONS"
)

// Reconnection errors.
const (
	ErrCodeReconnectionFailed       ErrorCode = "RECONNECTION_FAILED"
	ErrCodeReconnectionTokenInvalid ErrorCode = "RECONNECTION_TOKEN_INVALID"
	ErrCodeReconnectionExpired      ErrorCode = "RECONNECTION_EXPIRED"
	ErrCodePlayerAlreadyConnected   ErrorCode = "PLAYER_ALREADY_CONNECTED"
)

// Spectator errors.
const (
	ErrCodeSpectatorNotAllowed ErrorCode = "SPECTATOR_NOT_ALLOWED"
	ErrCodeTooManySpectators   ErrorCode = "TOO_MANY_SPECTATORS"
	ErrCodeNotASpectator       ErrorCode = "NOT_A_SPECTATOR"
	ErrCodeSpectatorJoinFailed ErrorCode = "SPECTATOR_JOIN_FAILED"
)

// Server errors.
const (
	ErrCodeInternalError      ErrorCode = "INTERNAL_ERROR"
	ErrCodeStorageError       ErrorCode = "STORAGE_ERROR"
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// String returns the wire form of the code.
func (c ErrorCode) String() string {
	return string(c)
}

// Description returns a human-readable explanation of the code, suitable for
// showing to end users or logging. Unknown codes return a generic fallback so
// that a newer server never crashes an older SDK.
func (c ErrorCode) Description() string {
	switch c {
	case ErrCodeUnauthorized:
		return "Access denied: authentication credentials are missing or invalid."
	case ErrCodeInvalidToken:
		return "The authentication token is invalid, malformed or expired."
	case ErrCodeAuthenticationRequired:
		return "This operation requires authentication."
	case ErrCodeInvalidAppID:
		return "The provided application ID is not recognized."
	case ErrCodeAppIDExpired:
		return "The application ID has expired; renew the application registration."
	case ErrCodeAppIDRevoked:
		return "The application ID has been revoked."
	case ErrCodeAppIDSuspended:
		return "The application ID has been suspended."
	case ErrCodeMissingAppID:
		return "An application ID is required but was not provided."
	case ErrCodeAuthenticationTimeout:
		return "Authentication took too long to complete; try again."
	case ErrCodeSDKVersionUnsupported:
		return "This SDK version is no longer supported; upgrade to the latest release."
	case ErrCodeUnsupportedGameDataFormat:
		return "The requested game data format is not supported by this server."
	case ErrCodeInvalidInput:
		return "The provided input is invalid or malformed."
	case ErrCodeInvalidGameName:
		return "The game name is empty or violates naming requirements."
	case ErrCodeInvalidRoomCode:
		return "The room code is malformed."
	case ErrCodeInvalidPlayerName:
		return "The player name is empty or violates length requirements."
	case ErrCodeInvalidMaxPlayers:
		return "The maximum player count is outside the allowed limits."
	case ErrCodeMessageTooLarge:
		return "The message exceeds the maximum allowed size."
	case ErrCodeRoomNotFound:
		return "The requested room was not found; it may have closed or the code is wrong."
	case ErrCodeRoomFull:
		return "The room is at maximum player capacity."
	case ErrCodeAlreadyInRoom:
		return "Already in a room; leave it before joining another."
	case ErrCodeNotInRoom:
		return "Not currently in a room."
	case ErrCodeRoomCreationFailed:
		return "The room could not be created; try again."
	case ErrCodeMaxRoomsPerGameExceeded:
		return "The maximum number of rooms for this game has been reached."
	case ErrCodeInvalidRoomState:
		return "The room is in an invalid state for this operation."
	case ErrCodeAuthorityNotSupported:
		return "Authority features are not enabled on this server."
	case ErrCodeAuthorityConflict:
		return "Another client already holds authority."
	case ErrCodeAuthorityDenied:
		return "No permission to claim authority in this room."
	case ErrCodeRateLimitExceeded:
		return "Too many requests in a short time; slow down and retry later."
	case ErrCodeTooManyConnections:
		return "Too many active connections for this client."
	case ErrCodeReconnectionFailed:
		return "Reconnection failed; the session may have expired or the room closed."
	case ErrCodeReconnectionTokenInvalid:
		return "The reconnection token is invalid; join the room again."
	case ErrCodeReconnectionExpired:
		return "The reconnection window has expired; join the room again as a new player."
	case ErrCodePlayerAlreadyConnected:
		return "This player is already connected from another session."
	case ErrCodeSpectatorNotAllowed:
		return "Spectator mode is not enabled for this room."
	case ErrCodeTooManySpectators:
		return "The room is at maximum spectator capacity."
	case ErrCodeNotASpectator:
		return "This action is only available to spectators."
	case ErrCodeSpectatorJoinFailed:
		return "Could not join as a spectator; the room may be full or spectating disabled."
	case ErrCodeInternalError:
		return "An internal server error occurred."
	case ErrCodeStorageError:
		return "A storage error occurred while processing the request."
	case ErrCodeServiceUnavailable:
		return "The service is temporarily unavailable."
	default:
		return "Unknown error code: " + string(c)
	}
}
