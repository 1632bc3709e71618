package config

import (
	"sync"
)

var (
	loadedPrompts     AllLoadedPrompts
	loadedPromptsOnce sync.Once
)

// LoadedPrompts holds the content of prompts loaded from files
type LoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// LoadedSystemPrompts contains loaded system-level instructions
type LoadedSystemPrompts struct {
	AssessATS      string
	AssessJobMatch string
}

// LoadedUserPrompts contains loaded user-level prompt templates
type LoadedUserPrompts struct {
	AssessATS      string
	AssessJobMatch string
}

// OperationLoadedPrompts holds loaded prompts for a specific operation
type OperationLoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// AllLoadedPrompts holds all loaded prompts for all operations
type AllLoadedPrompts struct {
	Global   LoadedPrompts
	ATS      OperationLoadedPrompts
	JobMatch OperationLoadedPrompts
}

// GetPromptsForOperation returns a copy of the loaded prompts for an operation type
func GetPromptsForOperation(operationType string) OperationLoadedPrompts {
	var result OperationLoadedPrompts

	switch operationType {
	case "ats":
		result = loadedPrompts.ATS
		logPromptSource("ats", &result)
	case "job_match":
		result = loadedPrompts.JobMatch
		logPromptSource("job_match", &result)
	default:
		result = OperationLoadedPrompts{
			SystemPrompts: loadedPrompts.Global.SystemPrompts,
			UserPrompts:   loadedPrompts.Global.UserPrompts,
		}
		logPromptSource("global", &result)
	}

	return result
}

// logPromptSource logs where each prompt came from for debugging purposes
func logPromptSource(operationType string, prompts *OperationLoadedPrompts) {
	// Prompt source information can be determined if needed for debugging
}
