package constants

// Centralized constants for env keys and the Gemini integration.
const (
	// Environment variable keys
	EnvGeminiAPIKey   = "GEMINI_API_KEY"
	EnvGeminiModel    = "RPG_GEMINI_MODEL"
	EnvGeminiEndpoint = "RPG_GEMINI_ENDPOINT"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	HeaderGoogAPIKey  = "x-goog-api-key"

	ContentTypeJSON = "application/json"

	// Gemini API base URL and endpoint path (path takes the model name)
	GeminiBaseURL            = "https://generativelanguage.googleapis.com"
	GeminiGenerateContentFmt = "/v1beta/models/%s:generateContent"
	GeminiModel              = "gemini-2.0-flash"
	GeminiRequestTimeoutSecs = 30
	GenerateEnemyTimeoutSecs = 60
)

// Combat tuning values
const (
	// Readiness gauge bounds; a combatant acts at GaugeMax and the gauge
	// advances by GaugeIncrement x speed per tick.
	GaugeMax       = 100
	GaugeIncrement = 1

	// Physical attacks add a uniform bonus in [0, AttackBonusRange).
	AttackBonusRange = 6

	// Matching an ability element against the target weakness multiplies
	// spell damage by WeaknessMultiplier.
	WeaknessMultiplier = 2

	// Chance the default enemy policy attacks instead of casting.
	EnemyAttackChance = 0.7

	// Bounded rolling log of recent turn outcomes kept for display.
	BattleLogLimit = 5
)

// Generated enemy descriptor stat ranges
const (
	EnemyHealthMin   = 50
	EnemyHealthMax   = 100
	EnemyManaMin     = 10
	EnemyManaMax     = 40
	EnemyStrengthMin = 8
	EnemyStrengthMax = 20
	EnemyMagicMin    = 8
	EnemyMagicMax    = 20
	EnemySpeedMin    = 5
	EnemySpeedMax    = 15
)

// Common error messages used by the Gemini client
const (
	ErrFailedCreateRequest        = "Failed to create request"
	ErrRequestToGeminiFailed      = "Request to Gemini failed"
	ErrGeminiGenerationFailed     = "Gemini generation failed"
	ErrFailedDecodeGeminiResponse = "Failed to decode Gemini response"
	ErrGeminiReturnedNoContent    = "Gemini returned no content"
	ErrEnvNotSetFmt               = "%s not set"
)

// Logging field names
const (
	LogFieldBiome  = "biome"
	LogFieldName   = "name"
	LogFieldKey    = "key"
	LogFieldSeed   = "seed"
	LogFieldModel  = "model"
	LogFieldSource = "source"
	LogFieldWinner = "winner"
	LogFieldTurns  = "turns"
)

// Log source values for generated enemies
const (
	SourceGenerated = "generated"
	SourceFallback  = "fallback"
)
