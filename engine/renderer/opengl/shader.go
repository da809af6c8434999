package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

var shaderUniforms = []string{
	metadata.UniformElapsedTime,
	metadata.UniformDiffuseTexture,
	metadata.UniformNormalTexture,
	metadata.UniformLightPosition,
	metadata.UniformModelMatrix,
	metadata.UniformViewMatrix,
	metadata.UniformProjection,
}

// ShaderCreate compiles both stages and links them into a program. Compile
// and link failures carry the driver's info log and wrap core.ErrCompile.
func (r *OpenGLRenderer) ShaderCreate(name, vertexSource, fragmentSource string) (*metadata.Shader, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, errors.Wrap(err, "fragment shader")
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	// the program keeps the compiled stages alive
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return nil, errors.Wrapf(core.ErrCompile, "failed to link program: %s", strings.TrimRight(infoLog, "\x00"))
	}

	shader := &metadata.Shader{
		ID:               program,
		Name:             name,
		UniformLocations: make(map[string]int32, len(shaderUniforms)),
		State:            metadata.SHADER_STATE_INITIALIZED,
	}
	for _, u := range shaderUniforms {
		shader.UniformLocations[u] = gl.GetUniformLocation(program, gl.Str(u+"\x00"))
	}
	core.LogDebug("shader '%s' linked as program %d", name, program)
	return shader, nil
}

func (r *OpenGLRenderer) ShaderDestroy(shader *metadata.Shader) {
	if shader == nil || shader.State != metadata.SHADER_STATE_INITIALIZED {
		return
	}
	gl.DeleteProgram(shader.ID)
	shader.ID = 0
	shader.State = metadata.SHADER_STATE_NOT_CREATED
}

func compileShader(shaderType uint32, source string) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, errors.Wrapf(core.ErrCompile, "failed to compile: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}
