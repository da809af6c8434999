package metadata

/** @brief How a texture's pixels are interpreted. */
type TextureUse int

const (
	/** @brief Color data stored in sRGB; sampled values are linearized. */
	TextureUseDiffuse TextureUse = iota
	/** @brief Linear data such as a tangent space normal map. */
	TextureUseNormal
)

func (u TextureUse) String() string {
	switch u {
	case TextureUseDiffuse:
		return "diffuse"
	case TextureUseNormal:
		return "normal"
	default:
		return "unknown"
	}
}

/**
 * @brief Represents a texture uploaded to the GPU.
 */
type Texture struct {
	/** @brief The backend texture identifier. */
	ID uint32
	/** @brief The texture Width. */
	Width uint32
	/** @brief The texture Height. */
	Height uint32
	/** @brief The number of channels in the texture. */
	ChannelCount uint8
	/** @brief The texture use, selecting the internal format. */
	Use TextureUse
	/** @brief The texture Name. */
	Name string
}
