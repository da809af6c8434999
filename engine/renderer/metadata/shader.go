package metadata

/**
 * @brief Represents the current state of a given shader.
 */
type ShaderState int

const (
	/** @brief The shader has not yet gone through the creation process, and is unusable.*/
	SHADER_STATE_NOT_CREATED ShaderState = iota
	/** @brief The shader is compiled and linked, and is ready for use.*/
	SHADER_STATE_INITIALIZED
)

/**
 * @brief Represents a linked shader program on the frontend.
 */
type Shader struct {
	/** @brief The backend program identifier. */
	ID uint32
	/** @brief The shader Name. */
	Name string
	/** @brief Uniform locations by name, filled by the backend on creation. */
	UniformLocations map[string]int32
	State            ShaderState
}

// UniformLocation returns the location of the named uniform, or -1 when the
// program does not use it (which GL silently ignores).
func (s *Shader) UniformLocation(name string) int32 {
	if loc, ok := s.UniformLocations[name]; ok {
		return loc
	}
	return -1
}
