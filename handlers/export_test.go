package handlers

// SessionKeyPrefix exposes sessionKeyPrefix to external tests.
const SessionKeyPrefix = sessionKeyPrefix
