// SPDX-License-Identifier: Unlicense OR MIT

package gl

// The full enumeration dictionary is external to this module. The values below
// are the ones the adapters interpret themselves, plus the common values used
// by the helpers and tests.
const (
	ACTIVE_ATTRIBUTES                    = 0x8B89
	ACTIVE_ATTRIBUTE_MAX_LENGTH          = 0x8B8A
	ACTIVE_UNIFORMS                      = 0x8B86
	ACTIVE_UNIFORM_MAX_LENGTH            = 0x8B87
	ALREADY_SIGNALED                     = 0x911A
	ARRAY_BUFFER                         = 0x8892
	BLEND                                = 0x0BE2
	BUFFER                               = 0x82E0
	BUFFER_SIZE                          = 0x8764
	COLOR                                = 0x1800
	COLOR_ATTACHMENT0                    = 0x8CE0
	COLOR_BUFFER_BIT                     = 0x4000
	COLOR_CLEAR_VALUE                    = 0x0C22
	COMPILE_STATUS                       = 0x8B81
	COMPUTE_SHADER                       = 0x91B9
	CONDITION_SATISFIED                  = 0x911C
	DEBUG_OUTPUT                         = 0x92E0
	DEBUG_OUTPUT_SYNCHRONOUS             = 0x8242
	DEBUG_SEVERITY_HIGH                  = 0x9146
	DEBUG_SEVERITY_LOW                   = 0x9148
	DEBUG_SEVERITY_MEDIUM                = 0x9147
	DEBUG_SEVERITY_NOTIFICATION          = 0x826B
	DEBUG_SOURCE_API                     = 0x8246
	DEBUG_SOURCE_APPLICATION             = 0x824A
	DEBUG_TYPE_ERROR                     = 0x824C
	DEBUG_TYPE_MARKER                    = 0x8268
	DEPTH                                = 0x1801
	DEPTH_ATTACHMENT                     = 0x8D00
	DEPTH_BUFFER_BIT                     = 0x0100
	DEPTH_STENCIL                        = 0x84F9
	DEPTH_TEST                           = 0x0B71
	DONT_CARE                            = 0x1100
	DRAW_FRAMEBUFFER                     = 0x8CA9
	DYNAMIC_DRAW                         = 0x88E8
	DYNAMIC_STORAGE_BIT                  = 0x0100
	ELEMENT_ARRAY_BUFFER                 = 0x8893
	EXTENSIONS                           = 0x1F03
	FALSE                                = 0
	FLOAT                                = 0x1406
	FRAGMENT_SHADER                      = 0x8B30
	FRAMEBUFFER                          = 0x8D40
	FRAMEBUFFER_COMPLETE                 = 0x8CD5
	INFO_LOG_LENGTH                      = 0x8B84
	INVALID_INDEX                        = 0xFFFFFFFF
	INVALID_ENUM                         = 0x0500
	LINK_STATUS                          = 0x8B82
	MAJOR_VERSION                        = 0x821B
	MAP_READ_BIT                         = 0x0001
	MAP_WRITE_BIT                        = 0x0002
	MAX_COMBINED_TEXTURE_IMAGE_UNITS     = 0x8B4D
	MAX_DEBUG_LOGGED_MESSAGES            = 0x9144
	MAX_DEBUG_MESSAGE_LENGTH             = 0x9143
	MAX_LABEL_LENGTH                     = 0x82E8
	MAX_TEXTURE_SIZE                     = 0x0D33
	MINOR_VERSION                        = 0x821C
	NO_ERROR                             = 0
	NUM_EXTENSIONS                       = 0x821D
	PROGRAM                              = 0x82E2
	QUERY                                = 0x82E3
	QUERY_RESULT                         = 0x8866
	QUERY_RESULT_AVAILABLE               = 0x8867
	RENDERBUFFER                         = 0x8D41
	RENDERER                             = 0x1F01
	RGBA                                 = 0x1908
	RGBA8                                = 0x8058
	SAMPLER                              = 0x82E6
	SCISSOR_BOX                          = 0x0C10
	SHADER                               = 0x82E1
	SHADING_LANGUAGE_VERSION             = 0x8B8C
	SIGNALED                             = 0x9119
	STATIC_DRAW                          = 0x88E4
	STENCIL                              = 0x1802
	STENCIL_BUFFER_BIT                   = 0x0400
	SYNC_FLUSH_COMMANDS_BIT              = 0x0001
	SYNC_GPU_COMMANDS_COMPLETE           = 0x9117
	SYNC_STATUS                          = 0x9114
	TEXTURE                              = 0x1702
	TEXTURE0                             = 0x84C0
	TEXTURE_2D                           = 0x0DE1
	TEXTURE_BINDING_2D                   = 0x8069
	TIMEOUT_EXPIRED                      = 0x911B
	TIMESTAMP_EXT                        = 0x8E28
	TIME_ELAPSED_EXT                     = 0x88BF
	TRANSFORM_FEEDBACK                   = 0x8E22
	TRANSFORM_FEEDBACK_BUFFER_BINDING    = 0x8C8F
	TRIANGLES                            = 0x0004
	TRUE                                 = 1
	UNIFORM_BUFFER                       = 0x8A11
	UNIFORM_BUFFER_BINDING               = 0x8A28
	UNSIGNALED                           = 0x9118
	UNSIGNED_BYTE                        = 0x1401
	UNSIGNED_INT                         = 0x1405
	UNSIGNED_SHORT                       = 0x1403
	VENDOR                               = 0x1F00
	VERSION                              = 0x1F02
	VERTEX_ARRAY                         = 0x8074
	VERTEX_SHADER                        = 0x8B31
	VIEWPORT                             = 0x0BA2
	WAIT_FAILED                          = 0x911D
	ZERO                                 = 0

	// TIMEOUT_IGNORED is the 64 bit sentinel accepted by ClientWaitSync and
	// WaitSync.
	TIMEOUT_IGNORED uint64 = 0xFFFFFFFFFFFFFFFF
)
