package metadata

/**
 * @brief A structure to hold decoded image data. Pixels are tightly packed
 * RGBA8, row 0 first.
 */
type ImageResourceData struct {
	/** @brief The number of channels. Always 4 once decoded. */
	ChannelCount uint8
	/** @brief The width of the image. */
	Width uint32
	/** @brief The height of the image. */
	Height uint32
	/** @brief The pixel data of the image. */
	Pixels []uint8
}

/** @brief Parameters used when loading an image. */
type ImageResourceParams struct {
	/** @brief Indicates if the image should be flipped on the y-axis when loaded. */
	FlipY bool
}
