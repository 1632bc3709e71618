package config

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetATSConfig returns the AI configuration for ATS assessments with fallback to global config
func (c *Config) GetATSConfig() OperationAIConfig {
	config := c.AI.ATS

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply ATS-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.AssessATS == "" {
		config.CustomPrompts.SystemPrompts.AssessATS = c.AI.CustomPrompts.SystemPrompts.AssessATS
	}
	if config.CustomPrompts.UserPrompts.AssessATS == "" {
		config.CustomPrompts.UserPrompts.AssessATS = c.AI.CustomPrompts.UserPrompts.AssessATS
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.AssessATSFile == "" {
		config.CustomPrompts.SystemPrompts.AssessATSFile = c.AI.CustomPrompts.SystemPrompts.AssessATSFile
	}
	if config.CustomPrompts.UserPrompts.AssessATSFile == "" {
		config.CustomPrompts.UserPrompts.AssessATSFile = c.AI.CustomPrompts.UserPrompts.AssessATSFile
	}

	return config
}

// GetJobMatchConfig returns the AI configuration for job-match assessments with fallback to global config
func (c *Config) GetJobMatchConfig() OperationAIConfig {
	config := c.AI.JobMatch

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply job-match-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.AssessJobMatch == "" {
		config.CustomPrompts.SystemPrompts.AssessJobMatch = c.AI.CustomPrompts.SystemPrompts.AssessJobMatch
	}
	if config.CustomPrompts.UserPrompts.AssessJobMatch == "" {
		config.CustomPrompts.UserPrompts.AssessJobMatch = c.AI.CustomPrompts.UserPrompts.AssessJobMatch
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.AssessJobMatchFile == "" {
		config.CustomPrompts.SystemPrompts.AssessJobMatchFile = c.AI.CustomPrompts.SystemPrompts.AssessJobMatchFile
	}
	if config.CustomPrompts.UserPrompts.AssessJobMatchFile == "" {
		config.CustomPrompts.UserPrompts.AssessJobMatchFile = c.AI.CustomPrompts.UserPrompts.AssessJobMatchFile
	}

	return config
}

// GetLoadedATSPrompts returns a copy of the loaded prompts for the ATS operation
func (c *Config) GetLoadedATSPrompts() OperationLoadedPrompts {
	return loadedPrompts.ATS
}

// GetLoadedJobMatchPrompts returns a copy of the loaded prompts for the job-match operation
func (c *Config) GetLoadedJobMatchPrompts() OperationLoadedPrompts {
	return loadedPrompts.JobMatch
}

// GetLoadedGlobalPrompts returns a copy of the loaded global prompts
func (c *Config) GetLoadedGlobalPrompts() LoadedPrompts {
	return loadedPrompts.Global
}
