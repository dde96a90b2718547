// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage in ~/.revu/config.toml
//   - PromptStore: user-editable LLM prompt files in ~/.revu/prompts/
package file
