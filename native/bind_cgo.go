// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js && !windows && cgo

package native

import (
	"unsafe"
)

/*
#cgo CFLAGS: -Werror

#include <stdint.h>
#include <stdlib.h>
#include <sys/types.h>

typedef unsigned int GLenum;
typedef unsigned int GLuint;
typedef char GLchar;
typedef float GLfloat;
typedef double GLdouble;
typedef ssize_t GLsizeiptr;
typedef intptr_t GLintptr;
typedef unsigned int GLbitfield;
typedef int GLint;
typedef unsigned char GLboolean;
typedef int GLsizei;
typedef uint8_t GLubyte;
typedef uint64_t GLuint64;
typedef struct __GLsync *GLsync;

typedef void (*GLDEBUGPROC)(GLenum source, GLenum type, GLuint id, GLenum severity, GLsizei length, const GLchar *message, const void *userParam);

typedef void (*_glActiveTexture)(GLenum texture);
typedef void (*_glAttachShader)(GLuint program, GLuint shader);
typedef void (*_glBeginQuery)(GLenum target, GLuint id);
typedef void (*_glBeginQueryEXT)(GLenum target, GLuint id);
typedef void (*_glBeginTransformFeedback)(GLenum primitiveMode);
typedef void (*_glBindAttribLocation)(GLuint program, GLuint index, const GLchar *name);
typedef void (*_glBindBuffer)(GLenum target, GLuint buffer);
typedef void (*_glBindBufferBase)(GLenum target, GLuint index, GLuint buffer);
typedef void (*_glBindBufferRange)(GLenum target, GLuint index, GLuint buffer, GLintptr offset, GLsizeiptr size);
typedef void (*_glBindFramebuffer)(GLenum target, GLuint framebuffer);
typedef void (*_glBindImageTexture)(GLuint unit, GLuint texture, GLint level, GLboolean layered, GLint layer, GLenum access, GLenum format);
typedef void (*_glBindRenderbuffer)(GLenum target, GLuint renderbuffer);
typedef void (*_glBindSampler)(GLuint unit, GLuint sampler);
typedef void (*_glBindTexture)(GLenum target, GLuint texture);
typedef void (*_glBindTransformFeedback)(GLenum target, GLuint id);
typedef void (*_glBindVertexArray)(GLuint array);
typedef void (*_glBindVertexArrayOES)(GLuint array);
typedef void (*_glBlendColor)(GLfloat red, GLfloat green, GLfloat blue, GLfloat alpha);
typedef void (*_glBlendEquation)(GLenum mode);
typedef void (*_glBlendEquationSeparate)(GLenum modeRGB, GLenum modeAlpha);
typedef void (*_glBlendFunc)(GLenum sfactor, GLenum dfactor);
typedef void (*_glBlendFuncSeparate)(GLenum srcRGB, GLenum dstRGB, GLenum srcAlpha, GLenum dstAlpha);
typedef void (*_glBlitFramebuffer)(GLint srcX0, GLint srcY0, GLint srcX1, GLint srcY1, GLint dstX0, GLint dstY0, GLint dstX1, GLint dstY1, GLbitfield mask, GLenum filter);
typedef void (*_glBufferData)(GLenum target, GLsizeiptr size, const void *data, GLenum usage);
typedef void (*_glBufferStorage)(GLenum target, GLsizeiptr size, const void *data, GLbitfield flags);
typedef void (*_glBufferStorageEXT)(GLenum target, GLsizeiptr size, const void *data, GLbitfield flags);
typedef void (*_glBufferSubData)(GLenum target, GLintptr offset, GLsizeiptr size, const void *data);
typedef GLenum (*_glCheckFramebufferStatus)(GLenum target);
typedef void (*_glClear)(GLbitfield mask);
typedef void (*_glClearBufferfi)(GLenum buffer, GLint drawbuffer, GLfloat depth, GLint stencil);
typedef void (*_glClearBufferfv)(GLenum buffer, GLint drawbuffer, const GLfloat *value);
typedef void (*_glClearBufferiv)(GLenum buffer, GLint drawbuffer, const GLint *value);
typedef void (*_glClearBufferuiv)(GLenum buffer, GLint drawbuffer, const GLuint *value);
typedef void (*_glClearColor)(GLfloat red, GLfloat green, GLfloat blue, GLfloat alpha);
typedef void (*_glClearDepth)(GLdouble depth);
typedef void (*_glClearDepthf)(GLfloat d);
typedef void (*_glClearStencil)(GLint s);
typedef GLenum (*_glClientWaitSync)(GLsync sync, GLbitfield flags, GLuint64 timeout);
typedef void (*_glColorMask)(GLboolean red, GLboolean green, GLboolean blue, GLboolean alpha);
typedef void (*_glCompileShader)(GLuint shader);
typedef void (*_glCopyBufferSubData)(GLenum readTarget, GLenum writeTarget, GLintptr readOffset, GLintptr writeOffset, GLsizeiptr size);
typedef void (*_glCopyTexSubImage2D)(GLenum target, GLint level, GLint xoffset, GLint yoffset, GLint x, GLint y, GLsizei width, GLsizei height);
typedef GLuint (*_glCreateProgram)(void);
typedef GLuint (*_glCreateShader)(GLenum type);
typedef void (*_glCullFace)(GLenum mode);
typedef void (*_glDebugMessageControl)(GLenum source, GLenum type, GLenum severity, GLsizei count, const GLuint *ids, GLboolean enabled);
typedef void (*_glDebugMessageControlKHR)(GLenum source, GLenum type, GLenum severity, GLsizei count, const GLuint *ids, GLboolean enabled);
typedef void (*_glDebugMessageInsert)(GLenum source, GLenum type, GLuint id, GLenum severity, GLsizei length, const GLchar *buf);
typedef void (*_glDebugMessageInsertKHR)(GLenum source, GLenum type, GLuint id, GLenum severity, GLsizei length, const GLchar *buf);
typedef void (*_glDeleteBuffers)(GLsizei n, const GLuint *buffers);
typedef void (*_glDeleteFramebuffers)(GLsizei n, const GLuint *framebuffers);
typedef void (*_glDeleteProgram)(GLuint program);
typedef void (*_glDeleteQueries)(GLsizei n, const GLuint *ids);
typedef void (*_glDeleteQueriesEXT)(GLsizei n, const GLuint *ids);
typedef void (*_glDeleteRenderbuffers)(GLsizei n, const GLuint *renderbuffers);
typedef void (*_glDeleteSamplers)(GLsizei count, const GLuint *samplers);
typedef void (*_glDeleteShader)(GLuint shader);
typedef void (*_glDeleteSync)(GLsync sync);
typedef void (*_glDeleteTextures)(GLsizei n, const GLuint *textures);
typedef void (*_glDeleteTransformFeedbacks)(GLsizei n, const GLuint *ids);
typedef void (*_glDeleteVertexArrays)(GLsizei n, const GLuint *arrays);
typedef void (*_glDeleteVertexArraysOES)(GLsizei n, const GLuint *arrays);
typedef void (*_glDepthFunc)(GLenum func);
typedef void (*_glDepthMask)(GLboolean flag);
typedef void (*_glDepthRange)(GLdouble n, GLdouble f);
typedef void (*_glDepthRangef)(GLfloat n, GLfloat f);
typedef void (*_glDetachShader)(GLuint program, GLuint shader);
typedef void (*_glDisable)(GLenum cap);
typedef void (*_glDisableVertexAttribArray)(GLuint index);
typedef void (*_glDiscardFramebufferEXT)(GLenum target, GLsizei numAttachments, const GLenum *attachments);
typedef void (*_glDispatchCompute)(GLuint numGroupsX, GLuint numGroupsY, GLuint numGroupsZ);
typedef void (*_glDrawArrays)(GLenum mode, GLint first, GLsizei count);
typedef void (*_glDrawArraysIndirect)(GLenum mode, const void * indirect);
typedef void (*_glDrawArraysInstanced)(GLenum mode, GLint first, GLsizei count, GLsizei instancecount);
typedef void (*_glDrawArraysInstancedANGLE)(GLenum mode, GLint first, GLsizei count, GLsizei instancecount);
typedef void (*_glDrawArraysInstancedEXT)(GLenum mode, GLint first, GLsizei count, GLsizei instancecount);
typedef void (*_glDrawArraysInstancedBaseInstance)(GLenum mode, GLint first, GLsizei count, GLsizei instancecount, GLuint baseinstance);
typedef void (*_glDrawArraysInstancedBaseInstanceEXT)(GLenum mode, GLint first, GLsizei count, GLsizei instancecount, GLuint baseinstance);
typedef void (*_glDrawBuffers)(GLsizei n, const GLenum *bufs);
typedef void (*_glDrawBuffersEXT)(GLsizei n, const GLenum *bufs);
typedef void (*_glDrawElements)(GLenum mode, GLsizei count, GLenum type, const void * indices);
typedef void (*_glDrawElementsBaseVertex)(GLenum mode, GLsizei count, GLenum type, const void * indices, GLint basevertex);
typedef void (*_glDrawElementsBaseVertexEXT)(GLenum mode, GLsizei count, GLenum type, const void * indices, GLint basevertex);
typedef void (*_glDrawElementsBaseVertexOES)(GLenum mode, GLsizei count, GLenum type, const void * indices, GLint basevertex);
typedef void (*_glDrawElementsIndirect)(GLenum mode, GLenum type, const void * indirect);
typedef void (*_glDrawElementsInstanced)(GLenum mode, GLsizei count, GLenum type, const void * indices, GLsizei instancecount);
typedef void (*_glDrawElementsInstancedANGLE)(GLenum mode, GLsizei count, GLenum type, const void * indices, GLsizei instancecount);
typedef void (*_glDrawElementsInstancedEXT)(GLenum mode, GLsizei count, GLenum type, const void * indices, GLsizei instancecount);
typedef void (*_glDrawElementsInstancedBaseVertex)(GLenum mode, GLsizei count, GLenum type, const void * indices, GLsizei instancecount, GLint basevertex);
typedef void (*_glDrawElementsInstancedBaseVertexEXT)(GLenum mode, GLsizei count, GLenum type, const void * indices, GLsizei instancecount, GLint basevertex);
typedef void (*_glDrawElementsInstancedBaseVertexOES)(GLenum mode, GLsizei count, GLenum type, const void * indices, GLsizei instancecount, GLint basevertex);
typedef void (*_glDrawElementsInstancedBaseVertexBaseInstance)(GLenum mode, GLsizei count, GLenum type, const void * indices, GLsizei instancecount, GLint basevertex, GLuint baseinstance);
typedef void (*_glDrawElementsInstancedBaseVertexBaseInstanceEXT)(GLenum mode, GLsizei count, GLenum type, const void * indices, GLsizei instancecount, GLint basevertex, GLuint baseinstance);
typedef void (*_glEnable)(GLenum cap);
typedef void (*_glEnableVertexAttribArray)(GLuint index);
typedef void (*_glEndQuery)(GLenum target);
typedef void (*_glEndQueryEXT)(GLenum target);
typedef void (*_glEndTransformFeedback)(void);
typedef GLsync (*_glFenceSync)(GLenum condition, GLbitfield flags);
typedef void (*_glFinish)(void);
typedef void (*_glFlush)(void);
typedef void (*_glFramebufferRenderbuffer)(GLenum target, GLenum attachment, GLenum renderbuffertarget, GLuint renderbuffer);
typedef void (*_glFramebufferTexture2D)(GLenum target, GLenum attachment, GLenum textarget, GLuint texture, GLint level);
typedef void (*_glFramebufferTextureLayer)(GLenum target, GLenum attachment, GLuint texture, GLint level, GLint layer);
typedef void (*_glFrontFace)(GLenum mode);
typedef void (*_glGenBuffers)(GLsizei n, GLuint *buffers);
typedef void (*_glGenFramebuffers)(GLsizei n, GLuint *framebuffers);
typedef void (*_glGenQueries)(GLsizei n, GLuint *ids);
typedef void (*_glGenQueriesEXT)(GLsizei n, GLuint *ids);
typedef void (*_glGenRenderbuffers)(GLsizei n, GLuint *renderbuffers);
typedef void (*_glGenSamplers)(GLsizei count, GLuint *samplers);
typedef void (*_glGenTextures)(GLsizei n, GLuint *textures);
typedef void (*_glGenTransformFeedbacks)(GLsizei n, GLuint *ids);
typedef void (*_glGenVertexArrays)(GLsizei n, GLuint *arrays);
typedef void (*_glGenVertexArraysOES)(GLsizei n, GLuint *arrays);
typedef void (*_glGenerateMipmap)(GLenum target);
typedef void (*_glGetActiveAttrib)(GLuint program, GLuint index, GLsizei bufSize, GLsizei *length, GLint *size, GLenum *type, GLchar *name);
typedef void (*_glGetActiveUniform)(GLuint program, GLuint index, GLsizei bufSize, GLsizei *length, GLint *size, GLenum *type, GLchar *name);
typedef GLint (*_glGetAttribLocation)(GLuint program, const GLchar *name);
typedef void (*_glGetBooleanv)(GLenum pname, GLboolean *data);
typedef void (*_glGetBufferParameteriv)(GLenum target, GLenum pname, GLint *params);
typedef void (*_glGetBufferSubData)(GLenum target, GLintptr offset, GLsizeiptr size, void *data);
typedef GLuint (*_glGetDebugMessageLog)(GLuint count, GLsizei bufSize, GLenum *sources, GLenum *types, GLuint *ids, GLenum *severities, GLsizei *lengths, GLchar *messageLog);
typedef GLuint (*_glGetDebugMessageLogKHR)(GLuint count, GLsizei bufSize, GLenum *sources, GLenum *types, GLuint *ids, GLenum *severities, GLsizei *lengths, GLchar *messageLog);
typedef GLenum (*_glGetError)(void);
typedef void (*_glGetFloatv)(GLenum pname, GLfloat *data);
typedef void (*_glGetFramebufferAttachmentParameteriv)(GLenum target, GLenum attachment, GLenum pname, GLint *params);
typedef void (*_glGetIntegeri_v)(GLenum target, GLuint index, GLint *data);
typedef void (*_glGetIntegerv)(GLenum pname, GLint *data);
typedef void (*_glGetObjectLabel)(GLenum identifier, GLuint name, GLsizei bufSize, GLsizei *length, GLchar *label);
typedef void (*_glGetObjectLabelKHR)(GLenum identifier, GLuint name, GLsizei bufSize, GLsizei *length, GLchar *label);
typedef void (*_glGetObjectPtrLabel)(GLsync ptr, GLsizei bufSize, GLsizei *length, GLchar *label);
typedef void (*_glGetObjectPtrLabelKHR)(GLsync ptr, GLsizei bufSize, GLsizei *length, GLchar *label);
typedef void (*_glGetProgramInfoLog)(GLuint program, GLsizei bufSize, GLsizei *length, GLchar *infoLog);
typedef void (*_glGetProgramiv)(GLuint program, GLenum pname, GLint *params);
typedef void (*_glGetQueryObjectuiv)(GLuint id, GLenum pname, GLuint *params);
typedef void (*_glGetQueryObjectuivEXT)(GLuint id, GLenum pname, GLuint *params);
typedef void (*_glGetRenderbufferParameteriv)(GLenum target, GLenum pname, GLint *params);
typedef void (*_glGetShaderInfoLog)(GLuint shader, GLsizei bufSize, GLsizei *length, GLchar *infoLog);
typedef void (*_glGetShaderiv)(GLuint shader, GLenum pname, GLint *params);
typedef const GLubyte *(*_glGetString)(GLenum name);
typedef const GLubyte *(*_glGetStringi)(GLenum name, GLuint index);
typedef void (*_glGetSynciv)(GLsync sync, GLenum pname, GLsizei count, GLsizei *length, GLint *values);
typedef GLuint (*_glGetUniformBlockIndex)(GLuint program, const GLchar *uniformBlockName);
typedef GLint (*_glGetUniformLocation)(GLuint program, const GLchar *name);
typedef void (*_glHint)(GLenum target, GLenum mode);
typedef void (*_glInvalidateFramebuffer)(GLenum target, GLsizei numAttachments, const GLenum *attachments);
typedef GLboolean (*_glIsEnabled)(GLenum cap);
typedef void (*_glLineWidth)(GLfloat width);
typedef void (*_glLinkProgram)(GLuint program);
typedef void *(*_glMapBufferRange)(GLenum target, GLintptr offset, GLsizeiptr length, GLbitfield access);
typedef void (*_glMemoryBarrier)(GLbitfield barriers);
typedef void (*_glObjectLabel)(GLenum identifier, GLuint name, GLsizei length, const GLchar *label);
typedef void (*_glObjectLabelKHR)(GLenum identifier, GLuint name, GLsizei length, const GLchar *label);
typedef void (*_glObjectPtrLabel)(GLsync ptr, GLsizei length, const GLchar *label);
typedef void (*_glObjectPtrLabelKHR)(GLsync ptr, GLsizei length, const GLchar *label);
typedef void (*_glPauseTransformFeedback)(void);
typedef void (*_glPixelStorei)(GLenum pname, GLint param);
typedef void (*_glPolygonMode)(GLenum face, GLenum mode);
typedef void (*_glPolygonOffset)(GLfloat factor, GLfloat units);
typedef void (*_glPopDebugGroup)(void);
typedef void (*_glPopDebugGroupKHR)(void);
typedef void (*_glPushDebugGroup)(GLenum source, GLuint id, GLsizei length, const GLchar *message);
typedef void (*_glPushDebugGroupKHR)(GLenum source, GLuint id, GLsizei length, const GLchar *message);
typedef void (*_glQueryCounter)(GLuint id, GLenum target);
typedef void (*_glQueryCounterEXT)(GLuint id, GLenum target);
typedef void (*_glReadBuffer)(GLenum src);
typedef void (*_glReadPixels)(GLint x, GLint y, GLsizei width, GLsizei height, GLenum format, GLenum type, void *pixels);
typedef void (*_glRenderbufferStorage)(GLenum target, GLenum internalformat, GLsizei width, GLsizei height);
typedef void (*_glRenderbufferStorageMultisample)(GLenum target, GLsizei samples, GLenum internalformat, GLsizei width, GLsizei height);
typedef void (*_glResumeTransformFeedback)(void);
typedef void (*_glSamplerParameterf)(GLuint sampler, GLenum pname, GLfloat param);
typedef void (*_glSamplerParameteri)(GLuint sampler, GLenum pname, GLint param);
typedef void (*_glScissor)(GLint x, GLint y, GLsizei width, GLsizei height);
typedef void (*_glStencilFunc)(GLenum func, GLint ref, GLuint mask);
typedef void (*_glStencilFuncSeparate)(GLenum face, GLenum func, GLint ref, GLuint mask);
typedef void (*_glStencilMask)(GLuint mask);
typedef void (*_glStencilMaskSeparate)(GLenum face, GLuint mask);
typedef void (*_glStencilOp)(GLenum fail, GLenum zfail, GLenum zpass);
typedef void (*_glStencilOpSeparate)(GLenum face, GLenum sfail, GLenum dpfail, GLenum dppass);
typedef void (*_glTexImage2D)(GLenum target, GLint level, GLint internalformat, GLsizei width, GLsizei height, GLint border, GLenum format, GLenum type, const void *pixels);
typedef void (*_glTexImage3D)(GLenum target, GLint level, GLint internalformat, GLsizei width, GLsizei height, GLsizei depth, GLint border, GLenum format, GLenum type, const void *pixels);
typedef void (*_glTexParameterf)(GLenum target, GLenum pname, GLfloat param);
typedef void (*_glTexParameteri)(GLenum target, GLenum pname, GLint param);
typedef void (*_glTexStorage2D)(GLenum target, GLsizei levels, GLenum internalformat, GLsizei width, GLsizei height);
typedef void (*_glTexStorage3D)(GLenum target, GLsizei levels, GLenum internalformat, GLsizei width, GLsizei height, GLsizei depth);
typedef void (*_glTexSubImage2D)(GLenum target, GLint level, GLint xoffset, GLint yoffset, GLsizei width, GLsizei height, GLenum format, GLenum type, const void *pixels);
typedef void (*_glTexSubImage3D)(GLenum target, GLint level, GLint xoffset, GLint yoffset, GLint zoffset, GLsizei width, GLsizei height, GLsizei depth, GLenum format, GLenum type, const void *pixels);
typedef void (*_glUniform1f)(GLint location, GLfloat v0);
typedef void (*_glUniform1fv)(GLint location, GLsizei count, const GLfloat *value);
typedef void (*_glUniform1i)(GLint location, GLint v0);
typedef void (*_glUniform1iv)(GLint location, GLsizei count, const GLint *value);
typedef void (*_glUniform1ui)(GLint location, GLuint v0);
typedef void (*_glUniform1uiv)(GLint location, GLsizei count, const GLuint *value);
typedef void (*_glUniform2f)(GLint location, GLfloat v0, GLfloat v1);
typedef void (*_glUniform2fv)(GLint location, GLsizei count, const GLfloat *value);
typedef void (*_glUniform2i)(GLint location, GLint v0, GLint v1);
typedef void (*_glUniform2iv)(GLint location, GLsizei count, const GLint *value);
typedef void (*_glUniform2ui)(GLint location, GLuint v0, GLuint v1);
typedef void (*_glUniform2uiv)(GLint location, GLsizei count, const GLuint *value);
typedef void (*_glUniform3f)(GLint location, GLfloat v0, GLfloat v1, GLfloat v2);
typedef void (*_glUniform3fv)(GLint location, GLsizei count, const GLfloat *value);
typedef void (*_glUniform3i)(GLint location, GLint v0, GLint v1, GLint v2);
typedef void (*_glUniform3iv)(GLint location, GLsizei count, const GLint *value);
typedef void (*_glUniform3ui)(GLint location, GLuint v0, GLuint v1, GLuint v2);
typedef void (*_glUniform3uiv)(GLint location, GLsizei count, const GLuint *value);
typedef void (*_glUniform4f)(GLint location, GLfloat v0, GLfloat v1, GLfloat v2, GLfloat v3);
typedef void (*_glUniform4fv)(GLint location, GLsizei count, const GLfloat *value);
typedef void (*_glUniform4i)(GLint location, GLint v0, GLint v1, GLint v2, GLint v3);
typedef void (*_glUniform4iv)(GLint location, GLsizei count, const GLint *value);
typedef void (*_glUniform4ui)(GLint location, GLuint v0, GLuint v1, GLuint v2, GLuint v3);
typedef void (*_glUniform4uiv)(GLint location, GLsizei count, const GLuint *value);
typedef void (*_glUniformBlockBinding)(GLuint program, GLuint uniformBlockIndex, GLuint uniformBlockBinding);
typedef void (*_glUniformMatrix2fv)(GLint location, GLsizei count, GLboolean transpose, const GLfloat *value);
typedef void (*_glUniformMatrix3fv)(GLint location, GLsizei count, GLboolean transpose, const GLfloat *value);
typedef void (*_glUniformMatrix4fv)(GLint location, GLsizei count, GLboolean transpose, const GLfloat *value);
typedef GLboolean (*_glUnmapBuffer)(GLenum target);
typedef void (*_glUseProgram)(GLuint program);
typedef void (*_glValidateProgram)(GLuint program);
typedef void (*_glVertexAttrib1f)(GLuint index, GLfloat x);
typedef void (*_glVertexAttrib2f)(GLuint index, GLfloat x, GLfloat y);
typedef void (*_glVertexAttrib3f)(GLuint index, GLfloat x, GLfloat y, GLfloat z);
typedef void (*_glVertexAttrib4f)(GLuint index, GLfloat x, GLfloat y, GLfloat z, GLfloat w);
typedef void (*_glVertexAttribDivisor)(GLuint index, GLuint divisor);
typedef void (*_glVertexAttribDivisorANGLE)(GLuint index, GLuint divisor);
typedef void (*_glVertexAttribDivisorEXT)(GLuint index, GLuint divisor);
typedef void (*_glVertexAttribIPointer)(GLuint index, GLint size, GLenum type, GLsizei stride, const void * pointer);
typedef void (*_glVertexAttribPointer)(GLuint index, GLint size, GLenum type, GLboolean normalized, GLsizei stride, const void * pointer);
typedef void (*_glViewport)(GLint x, GLint y, GLsizei width, GLsizei height);
typedef void (*_glWaitSync)(GLsync sync, GLbitfield flags, GLuint64 timeout);

typedef void (*_glShaderSource)(GLuint shader, GLsizei count, const GLchar *const*string, const GLint *length);
typedef void (*_glTransformFeedbackVaryings)(GLuint program, GLsizei count, const GLchar *const*varyings, GLenum bufferMode);
typedef void (*_glDebugMessageCallback)(GLDEBUGPROC callback, const void *userParam);

static void glActiveTexture(_glActiveTexture f, GLenum texture) {
	f(texture);
}

static void glAttachShader(_glAttachShader f, GLuint program, GLuint shader) {
	f(program, shader);
}

static void glBeginQuery(_glBeginQuery f, GLenum target, GLuint id) {
	f(target, id);
}

static void glBeginQueryEXT(_glBeginQueryEXT f, GLenum target, GLuint id) {
	f(target, id);
}

static void glBeginTransformFeedback(_glBeginTransformFeedback f, GLenum primitiveMode) {
	f(primitiveMode);
}

static void glBindAttribLocation(_glBindAttribLocation f, GLuint program, GLuint index, const GLchar *name) {
	f(program, index, name);
}

static void glBindBuffer(_glBindBuffer f, GLenum target, GLuint buffer) {
	f(target, buffer);
}

static void glBindBufferBase(_glBindBufferBase f, GLenum target, GLuint index, GLuint buffer) {
	f(target, index, buffer);
}

static void glBindBufferRange(_glBindBufferRange f, GLenum target, GLuint index, GLuint buffer, GLintptr offset, GLsizeiptr size) {
	f(target, index, buffer, offset, size);
}

static void glBindFramebuffer(_glBindFramebuffer f, GLenum target, GLuint framebuffer) {
	f(target, framebuffer);
}

static void glBindImageTexture(_glBindImageTexture f, GLuint unit, GLuint texture, GLint level, GLboolean layered, GLint layer, GLenum access, GLenum format) {
	f(unit, texture, level, layered, layer, access, format);
}

static void glBindRenderbuffer(_glBindRenderbuffer f, GLenum target, GLuint renderbuffer) {
	f(target, renderbuffer);
}

static void glBindSampler(_glBindSampler f, GLuint unit, GLuint sampler) {
	f(unit, sampler);
}

static void glBindTexture(_glBindTexture f, GLenum target, GLuint texture) {
	f(target, texture);
}

static void glBindTransformFeedback(_glBindTransformFeedback f, GLenum target, GLuint id) {
	f(target, id);
}

static void glBindVertexArray(_glBindVertexArray f, GLuint array) {
	f(array);
}

static void glBindVertexArrayOES(_glBindVertexArrayOES f, GLuint array) {
	f(array);
}

static void glBlendColor(_glBlendColor f, GLfloat red, GLfloat green, GLfloat blue, GLfloat alpha) {
	f(red, green, blue, alpha);
}

static void glBlendEquation(_glBlendEquation f, GLenum mode) {
	f(mode);
}

static void glBlendEquationSeparate(_glBlendEquationSeparate f, GLenum modeRGB, GLenum modeAlpha) {
	f(modeRGB, modeAlpha);
}

static void glBlendFunc(_glBlendFunc f, GLenum sfactor, GLenum dfactor) {
	f(sfactor, dfactor);
}

static void glBlendFuncSeparate(_glBlendFuncSeparate f, GLenum srcRGB, GLenum dstRGB, GLenum srcAlpha, GLenum dstAlpha) {
	f(srcRGB, dstRGB, srcAlpha, dstAlpha);
}

static void glBlitFramebuffer(_glBlitFramebuffer f, GLint srcX0, GLint srcY0, GLint srcX1, GLint srcY1, GLint dstX0, GLint dstY0, GLint dstX1, GLint dstY1, GLbitfield mask, GLenum filter) {
	f(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter);
}

static void glBufferData(_glBufferData f, GLenum target, GLsizeiptr size, const void *data, GLenum usage) {
	f(target, size, data, usage);
}

static void glBufferStorage(_glBufferStorage f, GLenum target, GLsizeiptr size, const void *data, GLbitfield flags) {
	f(target, size, data, flags);
}

static void glBufferStorageEXT(_glBufferStorageEXT f, GLenum target, GLsizeiptr size, const void *data, GLbitfield flags) {
	f(target, size, data, flags);
}

static void glBufferSubData(_glBufferSubData f, GLenum target, GLintptr offset, GLsizeiptr size, const void *data) {
	f(target, offset, size, data);
}

static GLenum glCheckFramebufferStatus(_glCheckFramebufferStatus f, GLenum target) {
	return f(target);
}

static void glClear(_glClear f, GLbitfield mask) {
	f(mask);
}

static void glClearBufferfi(_glClearBufferfi f, GLenum buffer, GLint drawbuffer, GLfloat depth, GLint stencil) {
	f(buffer, drawbuffer, depth, stencil);
}

static void glClearBufferfv(_glClearBufferfv f, GLenum buffer, GLint drawbuffer, const GLfloat *value) {
	f(buffer, drawbuffer, value);
}

static void glClearBufferiv(_glClearBufferiv f, GLenum buffer, GLint drawbuffer, const GLint *value) {
	f(buffer, drawbuffer, value);
}

static void glClearBufferuiv(_glClearBufferuiv f, GLenum buffer, GLint drawbuffer, const GLuint *value) {
	f(buffer, drawbuffer, value);
}

static void glClearColor(_glClearColor f, GLfloat red, GLfloat green, GLfloat blue, GLfloat alpha) {
	f(red, green, blue, alpha);
}

static void glClearDepth(_glClearDepth f, GLdouble depth) {
	f(depth);
}

static void glClearDepthf(_glClearDepthf f, GLfloat d) {
	f(d);
}

static void glClearStencil(_glClearStencil f, GLint s) {
	f(s);
}

static GLenum glClientWaitSync(_glClientWaitSync f, uintptr_t sync, GLbitfield flags, GLuint64 timeout) {
	return f((GLsync)sync, flags, timeout);
}

static void glColorMask(_glColorMask f, GLboolean red, GLboolean green, GLboolean blue, GLboolean alpha) {
	f(red, green, blue, alpha);
}

static void glCompileShader(_glCompileShader f, GLuint shader) {
	f(shader);
}

static void glCopyBufferSubData(_glCopyBufferSubData f, GLenum readTarget, GLenum writeTarget, GLintptr readOffset, GLintptr writeOffset, GLsizeiptr size) {
	f(readTarget, writeTarget, readOffset, writeOffset, size);
}

static void glCopyTexSubImage2D(_glCopyTexSubImage2D f, GLenum target, GLint level, GLint xoffset, GLint yoffset, GLint x, GLint y, GLsizei width, GLsizei height) {
	f(target, level, xoffset, yoffset, x, y, width, height);
}

static GLuint glCreateProgram(_glCreateProgram f) {
	return f();
}

static GLuint glCreateShader(_glCreateShader f, GLenum type) {
	return f(type);
}

static void glCullFace(_glCullFace f, GLenum mode) {
	f(mode);
}

static void glDebugMessageControl(_glDebugMessageControl f, GLenum source, GLenum type, GLenum severity, GLsizei count, const GLuint *ids, GLboolean enabled) {
	f(source, type, severity, count, ids, enabled);
}

static void glDebugMessageControlKHR(_glDebugMessageControlKHR f, GLenum source, GLenum type, GLenum severity, GLsizei count, const GLuint *ids, GLboolean enabled) {
	f(source, type, severity, count, ids, enabled);
}

static void glDebugMessageInsert(_glDebugMessageInsert f, GLenum source, GLenum type, GLuint id, GLenum severity, GLsizei length, const GLchar *buf) {
	f(source, type, id, severity, length, buf);
}

static void glDebugMessageInsertKHR(_glDebugMessageInsertKHR f, GLenum source, GLenum type, GLuint id, GLenum severity, GLsizei length, const GLchar *buf) {
	f(source, type, id, severity, length, buf);
}

static void glDeleteBuffers(_glDeleteBuffers f, GLsizei n, const GLuint *buffers) {
	f(n, buffers);
}

static void glDeleteFramebuffers(_glDeleteFramebuffers f, GLsizei n, const GLuint *framebuffers) {
	f(n, framebuffers);
}

static void glDeleteProgram(_glDeleteProgram f, GLuint program) {
	f(program);
}

static void glDeleteQueries(_glDeleteQueries f, GLsizei n, const GLuint *ids) {
	f(n, ids);
}

static void glDeleteQueriesEXT(_glDeleteQueriesEXT f, GLsizei n, const GLuint *ids) {
	f(n, ids);
}

static void glDeleteRenderbuffers(_glDeleteRenderbuffers f, GLsizei n, const GLuint *renderbuffers) {
	f(n, renderbuffers);
}

static void glDeleteSamplers(_glDeleteSamplers f, GLsizei count, const GLuint *samplers) {
	f(count, samplers);
}

static void glDeleteShader(_glDeleteShader f, GLuint shader) {
	f(shader);
}

static void glDeleteSync(_glDeleteSync f, uintptr_t sync) {
	f((GLsync)sync);
}

static void glDeleteTextures(_glDeleteTextures f, GLsizei n, const GLuint *textures) {
	f(n, textures);
}

static void glDeleteTransformFeedbacks(_glDeleteTransformFeedbacks f, GLsizei n, const GLuint *ids) {
	f(n, ids);
}

static void glDeleteVertexArrays(_glDeleteVertexArrays f, GLsizei n, const GLuint *arrays) {
	f(n, arrays);
}

static void glDeleteVertexArraysOES(_glDeleteVertexArraysOES f, GLsizei n, const GLuint *arrays) {
	f(n, arrays);
}

static void glDepthFunc(_glDepthFunc f, GLenum func) {
	f(func);
}

static void glDepthMask(_glDepthMask f, GLboolean flag) {
	f(flag);
}

static void glDepthRange(_glDepthRange f, GLdouble n, GLdouble far_) {
	f(n, far_);
}

static void glDepthRangef(_glDepthRangef f, GLfloat n, GLfloat far_) {
	f(n, far_);
}

static void glDetachShader(_glDetachShader f, GLuint program, GLuint shader) {
	f(program, shader);
}

static void glDisable(_glDisable f, GLenum cap) {
	f(cap);
}

static void glDisableVertexAttribArray(_glDisableVertexAttribArray f, GLuint index) {
	f(index);
}

static void glDiscardFramebufferEXT(_glDiscardFramebufferEXT f, GLenum target, GLsizei numAttachments, const GLenum *attachments) {
	f(target, numAttachments, attachments);
}

static void glDispatchCompute(_glDispatchCompute f, GLuint numGroupsX, GLuint numGroupsY, GLuint numGroupsZ) {
	f(numGroupsX, numGroupsY, numGroupsZ);
}

static void glDrawArrays(_glDrawArrays f, GLenum mode, GLint first, GLsizei count) {
	f(mode, first, count);
}

static void glDrawArraysIndirect(_glDrawArraysIndirect f, GLenum mode, uintptr_t indirect) {
	f(mode, (const void *)indirect);
}

static void glDrawArraysInstanced(_glDrawArraysInstanced f, GLenum mode, GLint first, GLsizei count, GLsizei instancecount) {
	f(mode, first, count, instancecount);
}

static void glDrawArraysInstancedANGLE(_glDrawArraysInstancedANGLE f, GLenum mode, GLint first, GLsizei count, GLsizei instancecount) {
	f(mode, first, count, instancecount);
}

static void glDrawArraysInstancedEXT(_glDrawArraysInstancedEXT f, GLenum mode, GLint first, GLsizei count, GLsizei instancecount) {
	f(mode, first, count, instancecount);
}

static void glDrawArraysInstancedBaseInstance(_glDrawArraysInstancedBaseInstance f, GLenum mode, GLint first, GLsizei count, GLsizei instancecount, GLuint baseinstance) {
	f(mode, first, count, instancecount, baseinstance);
}

static void glDrawArraysInstancedBaseInstanceEXT(_glDrawArraysInstancedBaseInstanceEXT f, GLenum mode, GLint first, GLsizei count, GLsizei instancecount, GLuint baseinstance) {
	f(mode, first, count, instancecount, baseinstance);
}

static void glDrawBuffers(_glDrawBuffers f, GLsizei n, const GLenum *bufs) {
	f(n, bufs);
}

static void glDrawBuffersEXT(_glDrawBuffersEXT f, GLsizei n, const GLenum *bufs) {
	f(n, bufs);
}

static void glDrawElements(_glDrawElements f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices) {
	f(mode, count, type, (const void *)indices);
}

static void glDrawElementsBaseVertex(_glDrawElementsBaseVertex f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices, GLint basevertex) {
	f(mode, count, type, (const void *)indices, basevertex);
}

static void glDrawElementsBaseVertexEXT(_glDrawElementsBaseVertexEXT f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices, GLint basevertex) {
	f(mode, count, type, (const void *)indices, basevertex);
}

static void glDrawElementsBaseVertexOES(_glDrawElementsBaseVertexOES f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices, GLint basevertex) {
	f(mode, count, type, (const void *)indices, basevertex);
}

static void glDrawElementsIndirect(_glDrawElementsIndirect f, GLenum mode, GLenum type, uintptr_t indirect) {
	f(mode, type, (const void *)indirect);
}

static void glDrawElementsInstanced(_glDrawElementsInstanced f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices, GLsizei instancecount) {
	f(mode, count, type, (const void *)indices, instancecount);
}

static void glDrawElementsInstancedANGLE(_glDrawElementsInstancedANGLE f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices, GLsizei instancecount) {
	f(mode, count, type, (const void *)indices, instancecount);
}

static void glDrawElementsInstancedEXT(_glDrawElementsInstancedEXT f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices, GLsizei instancecount) {
	f(mode, count, type, (const void *)indices, instancecount);
}

static void glDrawElementsInstancedBaseVertex(_glDrawElementsInstancedBaseVertex f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices, GLsizei instancecount, GLint basevertex) {
	f(mode, count, type, (const void *)indices, instancecount, basevertex);
}

static void glDrawElementsInstancedBaseVertexEXT(_glDrawElementsInstancedBaseVertexEXT f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices, GLsizei instancecount, GLint basevertex) {
	f(mode, count, type, (const void *)indices, instancecount, basevertex);
}

static void glDrawElementsInstancedBaseVertexOES(_glDrawElementsInstancedBaseVertexOES f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices, GLsizei instancecount, GLint basevertex) {
	f(mode, count, type, (const void *)indices, instancecount, basevertex);
}

static void glDrawElementsInstancedBaseVertexBaseInstance(_glDrawElementsInstancedBaseVertexBaseInstance f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices, GLsizei instancecount, GLint basevertex, GLuint baseinstance) {
	f(mode, count, type, (const void *)indices, instancecount, basevertex, baseinstance);
}

static void glDrawElementsInstancedBaseVertexBaseInstanceEXT(_glDrawElementsInstancedBaseVertexBaseInstanceEXT f, GLenum mode, GLsizei count, GLenum type, uintptr_t indices, GLsizei instancecount, GLint basevertex, GLuint baseinstance) {
	f(mode, count, type, (const void *)indices, instancecount, basevertex, baseinstance);
}

static void glEnable(_glEnable f, GLenum cap) {
	f(cap);
}

static void glEnableVertexAttribArray(_glEnableVertexAttribArray f, GLuint index) {
	f(index);
}

static void glEndQuery(_glEndQuery f, GLenum target) {
	f(target);
}

static void glEndQueryEXT(_glEndQueryEXT f, GLenum target) {
	f(target);
}

static void glEndTransformFeedback(_glEndTransformFeedback f) {
	f();
}

static uintptr_t glFenceSync(_glFenceSync f, GLenum condition, GLbitfield flags) {
	return (uintptr_t)f(condition, flags);
}

static void glFinish(_glFinish f) {
	f();
}

static void glFlush(_glFlush f) {
	f();
}

static void glFramebufferRenderbuffer(_glFramebufferRenderbuffer f, GLenum target, GLenum attachment, GLenum renderbuffertarget, GLuint renderbuffer) {
	f(target, attachment, renderbuffertarget, renderbuffer);
}

static void glFramebufferTexture2D(_glFramebufferTexture2D f, GLenum target, GLenum attachment, GLenum textarget, GLuint texture, GLint level) {
	f(target, attachment, textarget, texture, level);
}

static void glFramebufferTextureLayer(_glFramebufferTextureLayer f, GLenum target, GLenum attachment, GLuint texture, GLint level, GLint layer) {
	f(target, attachment, texture, level, layer);
}

static void glFrontFace(_glFrontFace f, GLenum mode) {
	f(mode);
}

static void glGenBuffers(_glGenBuffers f, GLsizei n, GLuint *buffers) {
	f(n, buffers);
}

static void glGenFramebuffers(_glGenFramebuffers f, GLsizei n, GLuint *framebuffers) {
	f(n, framebuffers);
}

static void glGenQueries(_glGenQueries f, GLsizei n, GLuint *ids) {
	f(n, ids);
}

static void glGenQueriesEXT(_glGenQueriesEXT f, GLsizei n, GLuint *ids) {
	f(n, ids);
}

static void glGenRenderbuffers(_glGenRenderbuffers f, GLsizei n, GLuint *renderbuffers) {
	f(n, renderbuffers);
}

static void glGenSamplers(_glGenSamplers f, GLsizei count, GLuint *samplers) {
	f(count, samplers);
}

static void glGenTextures(_glGenTextures f, GLsizei n, GLuint *textures) {
	f(n, textures);
}

static void glGenTransformFeedbacks(_glGenTransformFeedbacks f, GLsizei n, GLuint *ids) {
	f(n, ids);
}

static void glGenVertexArrays(_glGenVertexArrays f, GLsizei n, GLuint *arrays) {
	f(n, arrays);
}

static void glGenVertexArraysOES(_glGenVertexArraysOES f, GLsizei n, GLuint *arrays) {
	f(n, arrays);
}

static void glGenerateMipmap(_glGenerateMipmap f, GLenum target) {
	f(target);
}

static void glGetActiveAttrib(_glGetActiveAttrib f, GLuint program, GLuint index, GLsizei bufSize, GLsizei *length, GLint *size, GLenum *type, GLchar *name) {
	f(program, index, bufSize, length, size, type, name);
}

static void glGetActiveUniform(_glGetActiveUniform f, GLuint program, GLuint index, GLsizei bufSize, GLsizei *length, GLint *size, GLenum *type, GLchar *name) {
	f(program, index, bufSize, length, size, type, name);
}

static GLint glGetAttribLocation(_glGetAttribLocation f, GLuint program, const GLchar *name) {
	return f(program, name);
}

static void glGetBooleanv(_glGetBooleanv f, GLenum pname, GLboolean *data) {
	f(pname, data);
}

static void glGetBufferParameteriv(_glGetBufferParameteriv f, GLenum target, GLenum pname, GLint *params) {
	f(target, pname, params);
}

static void glGetBufferSubData(_glGetBufferSubData f, GLenum target, GLintptr offset, GLsizeiptr size, void *data) {
	f(target, offset, size, data);
}

static GLuint glGetDebugMessageLog(_glGetDebugMessageLog f, GLuint count, GLsizei bufSize, GLenum *sources, GLenum *types, GLuint *ids, GLenum *severities, GLsizei *lengths, GLchar *messageLog) {
	return f(count, bufSize, sources, types, ids, severities, lengths, messageLog);
}

static GLuint glGetDebugMessageLogKHR(_glGetDebugMessageLogKHR f, GLuint count, GLsizei bufSize, GLenum *sources, GLenum *types, GLuint *ids, GLenum *severities, GLsizei *lengths, GLchar *messageLog) {
	return f(count, bufSize, sources, types, ids, severities, lengths, messageLog);
}

static GLenum glGetError(_glGetError f) {
	return f();
}

static void glGetFloatv(_glGetFloatv f, GLenum pname, GLfloat *data) {
	f(pname, data);
}

static void glGetFramebufferAttachmentParameteriv(_glGetFramebufferAttachmentParameteriv f, GLenum target, GLenum attachment, GLenum pname, GLint *params) {
	f(target, attachment, pname, params);
}

static void glGetIntegeri_v(_glGetIntegeri_v f, GLenum target, GLuint index, GLint *data) {
	f(target, index, data);
}

static void glGetIntegerv(_glGetIntegerv f, GLenum pname, GLint *data) {
	f(pname, data);
}

static void glGetObjectLabel(_glGetObjectLabel f, GLenum identifier, GLuint name, GLsizei bufSize, GLsizei *length, GLchar *label) {
	f(identifier, name, bufSize, length, label);
}

static void glGetObjectLabelKHR(_glGetObjectLabelKHR f, GLenum identifier, GLuint name, GLsizei bufSize, GLsizei *length, GLchar *label) {
	f(identifier, name, bufSize, length, label);
}

static void glGetObjectPtrLabel(_glGetObjectPtrLabel f, uintptr_t ptr, GLsizei bufSize, GLsizei *length, GLchar *label) {
	f((GLsync)ptr, bufSize, length, label);
}

static void glGetObjectPtrLabelKHR(_glGetObjectPtrLabelKHR f, uintptr_t ptr, GLsizei bufSize, GLsizei *length, GLchar *label) {
	f((GLsync)ptr, bufSize, length, label);
}

static void glGetProgramInfoLog(_glGetProgramInfoLog f, GLuint program, GLsizei bufSize, GLsizei *length, GLchar *infoLog) {
	f(program, bufSize, length, infoLog);
}

static void glGetProgramiv(_glGetProgramiv f, GLuint program, GLenum pname, GLint *params) {
	f(program, pname, params);
}

static void glGetQueryObjectuiv(_glGetQueryObjectuiv f, GLuint id, GLenum pname, GLuint *params) {
	f(id, pname, params);
}

static void glGetQueryObjectuivEXT(_glGetQueryObjectuivEXT f, GLuint id, GLenum pname, GLuint *params) {
	f(id, pname, params);
}

static void glGetRenderbufferParameteriv(_glGetRenderbufferParameteriv f, GLenum target, GLenum pname, GLint *params) {
	f(target, pname, params);
}

static void glGetShaderInfoLog(_glGetShaderInfoLog f, GLuint shader, GLsizei bufSize, GLsizei *length, GLchar *infoLog) {
	f(shader, bufSize, length, infoLog);
}

static void glGetShaderiv(_glGetShaderiv f, GLuint shader, GLenum pname, GLint *params) {
	f(shader, pname, params);
}

static const GLubyte *glGetString(_glGetString f, GLenum name) {
	return f(name);
}

static const GLubyte *glGetStringi(_glGetStringi f, GLenum name, GLuint index) {
	return f(name, index);
}

static void glGetSynciv(_glGetSynciv f, uintptr_t sync, GLenum pname, GLsizei count, GLsizei *length, GLint *values) {
	f((GLsync)sync, pname, count, length, values);
}

static GLuint glGetUniformBlockIndex(_glGetUniformBlockIndex f, GLuint program, const GLchar *uniformBlockName) {
	return f(program, uniformBlockName);
}

static GLint glGetUniformLocation(_glGetUniformLocation f, GLuint program, const GLchar *name) {
	return f(program, name);
}

static void glHint(_glHint f, GLenum target, GLenum mode) {
	f(target, mode);
}

static void glInvalidateFramebuffer(_glInvalidateFramebuffer f, GLenum target, GLsizei numAttachments, const GLenum *attachments) {
	f(target, numAttachments, attachments);
}

static GLboolean glIsEnabled(_glIsEnabled f, GLenum cap) {
	return f(cap);
}

static void glLineWidth(_glLineWidth f, GLfloat width) {
	f(width);
}

static void glLinkProgram(_glLinkProgram f, GLuint program) {
	f(program);
}

static void *glMapBufferRange(_glMapBufferRange f, GLenum target, GLintptr offset, GLsizeiptr length, GLbitfield access) {
	return f(target, offset, length, access);
}

static void glMemoryBarrier(_glMemoryBarrier f, GLbitfield barriers) {
	f(barriers);
}

static void glObjectLabel(_glObjectLabel f, GLenum identifier, GLuint name, GLsizei length, const GLchar *label) {
	f(identifier, name, length, label);
}

static void glObjectLabelKHR(_glObjectLabelKHR f, GLenum identifier, GLuint name, GLsizei length, const GLchar *label) {
	f(identifier, name, length, label);
}

static void glObjectPtrLabel(_glObjectPtrLabel f, uintptr_t ptr, GLsizei length, const GLchar *label) {
	f((GLsync)ptr, length, label);
}

static void glObjectPtrLabelKHR(_glObjectPtrLabelKHR f, uintptr_t ptr, GLsizei length, const GLchar *label) {
	f((GLsync)ptr, length, label);
}

static void glPauseTransformFeedback(_glPauseTransformFeedback f) {
	f();
}

static void glPixelStorei(_glPixelStorei f, GLenum pname, GLint param) {
	f(pname, param);
}

static void glPolygonMode(_glPolygonMode f, GLenum face, GLenum mode) {
	f(face, mode);
}

static void glPolygonOffset(_glPolygonOffset f, GLfloat factor, GLfloat units) {
	f(factor, units);
}

static void glPopDebugGroup(_glPopDebugGroup f) {
	f();
}

static void glPopDebugGroupKHR(_glPopDebugGroupKHR f) {
	f();
}

static void glPushDebugGroup(_glPushDebugGroup f, GLenum source, GLuint id, GLsizei length, const GLchar *message) {
	f(source, id, length, message);
}

static void glPushDebugGroupKHR(_glPushDebugGroupKHR f, GLenum source, GLuint id, GLsizei length, const GLchar *message) {
	f(source, id, length, message);
}

static void glQueryCounter(_glQueryCounter f, GLuint id, GLenum target) {
	f(id, target);
}

static void glQueryCounterEXT(_glQueryCounterEXT f, GLuint id, GLenum target) {
	f(id, target);
}

static void glReadBuffer(_glReadBuffer f, GLenum src) {
	f(src);
}

static void glReadPixels(_glReadPixels f, GLint x, GLint y, GLsizei width, GLsizei height, GLenum format, GLenum type, void *pixels) {
	f(x, y, width, height, format, type, pixels);
}

static void glRenderbufferStorage(_glRenderbufferStorage f, GLenum target, GLenum internalformat, GLsizei width, GLsizei height) {
	f(target, internalformat, width, height);
}

static void glRenderbufferStorageMultisample(_glRenderbufferStorageMultisample f, GLenum target, GLsizei samples, GLenum internalformat, GLsizei width, GLsizei height) {
	f(target, samples, internalformat, width, height);
}

static void glResumeTransformFeedback(_glResumeTransformFeedback f) {
	f();
}

static void glSamplerParameterf(_glSamplerParameterf f, GLuint sampler, GLenum pname, GLfloat param) {
	f(sampler, pname, param);
}

static void glSamplerParameteri(_glSamplerParameteri f, GLuint sampler, GLenum pname, GLint param) {
	f(sampler, pname, param);
}

static void glScissor(_glScissor f, GLint x, GLint y, GLsizei width, GLsizei height) {
	f(x, y, width, height);
}

static void glStencilFunc(_glStencilFunc f, GLenum func, GLint ref, GLuint mask) {
	f(func, ref, mask);
}

static void glStencilFuncSeparate(_glStencilFuncSeparate f, GLenum face, GLenum func, GLint ref, GLuint mask) {
	f(face, func, ref, mask);
}

static void glStencilMask(_glStencilMask f, GLuint mask) {
	f(mask);
}

static void glStencilMaskSeparate(_glStencilMaskSeparate f, GLenum face, GLuint mask) {
	f(face, mask);
}

static void glStencilOp(_glStencilOp f, GLenum fail, GLenum zfail, GLenum zpass) {
	f(fail, zfail, zpass);
}

static void glStencilOpSeparate(_glStencilOpSeparate f, GLenum face, GLenum sfail, GLenum dpfail, GLenum dppass) {
	f(face, sfail, dpfail, dppass);
}

static void glTexImage2D(_glTexImage2D f, GLenum target, GLint level, GLint internalformat, GLsizei width, GLsizei height, GLint border, GLenum format, GLenum type, const void *pixels) {
	f(target, level, internalformat, width, height, border, format, type, pixels);
}

static void glTexImage3D(_glTexImage3D f, GLenum target, GLint level, GLint internalformat, GLsizei width, GLsizei height, GLsizei depth, GLint border, GLenum format, GLenum type, const void *pixels) {
	f(target, level, internalformat, width, height, depth, border, format, type, pixels);
}

static void glTexParameterf(_glTexParameterf f, GLenum target, GLenum pname, GLfloat param) {
	f(target, pname, param);
}

static void glTexParameteri(_glTexParameteri f, GLenum target, GLenum pname, GLint param) {
	f(target, pname, param);
}

static void glTexStorage2D(_glTexStorage2D f, GLenum target, GLsizei levels, GLenum internalformat, GLsizei width, GLsizei height) {
	f(target, levels, internalformat, width, height);
}

static void glTexStorage3D(_glTexStorage3D f, GLenum target, GLsizei levels, GLenum internalformat, GLsizei width, GLsizei height, GLsizei depth) {
	f(target, levels, internalformat, width, height, depth);
}

static void glTexSubImage2D(_glTexSubImage2D f, GLenum target, GLint level, GLint xoffset, GLint yoffset, GLsizei width, GLsizei height, GLenum format, GLenum type, const void *pixels) {
	f(target, level, xoffset, yoffset, width, height, format, type, pixels);
}

static void glTexSubImage3D(_glTexSubImage3D f, GLenum target, GLint level, GLint xoffset, GLint yoffset, GLint zoffset, GLsizei width, GLsizei height, GLsizei depth, GLenum format, GLenum type, const void *pixels) {
	f(target, level, xoffset, yoffset, zoffset, width, height, depth, format, type, pixels);
}

static void glUniform1f(_glUniform1f f, GLint location, GLfloat v0) {
	f(location, v0);
}

static void glUniform1fv(_glUniform1fv f, GLint location, GLsizei count, const GLfloat *value) {
	f(location, count, value);
}

static void glUniform1i(_glUniform1i f, GLint location, GLint v0) {
	f(location, v0);
}

static void glUniform1iv(_glUniform1iv f, GLint location, GLsizei count, const GLint *value) {
	f(location, count, value);
}

static void glUniform1ui(_glUniform1ui f, GLint location, GLuint v0) {
	f(location, v0);
}

static void glUniform1uiv(_glUniform1uiv f, GLint location, GLsizei count, const GLuint *value) {
	f(location, count, value);
}

static void glUniform2f(_glUniform2f f, GLint location, GLfloat v0, GLfloat v1) {
	f(location, v0, v1);
}

static void glUniform2fv(_glUniform2fv f, GLint location, GLsizei count, const GLfloat *value) {
	f(location, count, value);
}

static void glUniform2i(_glUniform2i f, GLint location, GLint v0, GLint v1) {
	f(location, v0, v1);
}

static void glUniform2iv(_glUniform2iv f, GLint location, GLsizei count, const GLint *value) {
	f(location, count, value);
}

static void glUniform2ui(_glUniform2ui f, GLint location, GLuint v0, GLuint v1) {
	f(location, v0, v1);
}

static void glUniform2uiv(_glUniform2uiv f, GLint location, GLsizei count, const GLuint *value) {
	f(location, count, value);
}

static void glUniform3f(_glUniform3f f, GLint location, GLfloat v0, GLfloat v1, GLfloat v2) {
	f(location, v0, v1, v2);
}

static void glUniform3fv(_glUniform3fv f, GLint location, GLsizei count, const GLfloat *value) {
	f(location, count, value);
}

static void glUniform3i(_glUniform3i f, GLint location, GLint v0, GLint v1, GLint v2) {
	f(location, v0, v1, v2);
}

static void glUniform3iv(_glUniform3iv f, GLint location, GLsizei count, const GLint *value) {
	f(location, count, value);
}

static void glUniform3ui(_glUniform3ui f, GLint location, GLuint v0, GLuint v1, GLuint v2) {
	f(location, v0, v1, v2);
}

static void glUniform3uiv(_glUniform3uiv f, GLint location, GLsizei count, const GLuint *value) {
	f(location, count, value);
}

static void glUniform4f(_glUniform4f f, GLint location, GLfloat v0, GLfloat v1, GLfloat v2, GLfloat v3) {
	f(location, v0, v1, v2, v3);
}

static void glUniform4fv(_glUniform4fv f, GLint location, GLsizei count, const GLfloat *value) {
	f(location, count, value);
}

static void glUniform4i(_glUniform4i f, GLint location, GLint v0, GLint v1, GLint v2, GLint v3) {
	f(location, v0, v1, v2, v3);
}

static void glUniform4iv(_glUniform4iv f, GLint location, GLsizei count, const GLint *value) {
	f(location, count, value);
}

static void glUniform4ui(_glUniform4ui f, GLint location, GLuint v0, GLuint v1, GLuint v2, GLuint v3) {
	f(location, v0, v1, v2, v3);
}

static void glUniform4uiv(_glUniform4uiv f, GLint location, GLsizei count, const GLuint *value) {
	f(location, count, value);
}

static void glUniformBlockBinding(_glUniformBlockBinding f, GLuint program, GLuint uniformBlockIndex, GLuint uniformBlockBinding) {
	f(program, uniformBlockIndex, uniformBlockBinding);
}

static void glUniformMatrix2fv(_glUniformMatrix2fv f, GLint location, GLsizei count, GLboolean transpose, const GLfloat *value) {
	f(location, count, transpose, value);
}

static void glUniformMatrix3fv(_glUniformMatrix3fv f, GLint location, GLsizei count, GLboolean transpose, const GLfloat *value) {
	f(location, count, transpose, value);
}

static void glUniformMatrix4fv(_glUniformMatrix4fv f, GLint location, GLsizei count, GLboolean transpose, const GLfloat *value) {
	f(location, count, transpose, value);
}

static GLboolean glUnmapBuffer(_glUnmapBuffer f, GLenum target) {
	return f(target);
}

static void glUseProgram(_glUseProgram f, GLuint program) {
	f(program);
}

static void glValidateProgram(_glValidateProgram f, GLuint program) {
	f(program);
}

static void glVertexAttrib1f(_glVertexAttrib1f f, GLuint index, GLfloat x) {
	f(index, x);
}

static void glVertexAttrib2f(_glVertexAttrib2f f, GLuint index, GLfloat x, GLfloat y) {
	f(index, x, y);
}

static void glVertexAttrib3f(_glVertexAttrib3f f, GLuint index, GLfloat x, GLfloat y, GLfloat z) {
	f(index, x, y, z);
}

static void glVertexAttrib4f(_glVertexAttrib4f f, GLuint index, GLfloat x, GLfloat y, GLfloat z, GLfloat w) {
	f(index, x, y, z, w);
}

static void glVertexAttribDivisor(_glVertexAttribDivisor f, GLuint index, GLuint divisor) {
	f(index, divisor);
}

static void glVertexAttribDivisorANGLE(_glVertexAttribDivisorANGLE f, GLuint index, GLuint divisor) {
	f(index, divisor);
}

static void glVertexAttribDivisorEXT(_glVertexAttribDivisorEXT f, GLuint index, GLuint divisor) {
	f(index, divisor);
}

static void glVertexAttribIPointer(_glVertexAttribIPointer f, GLuint index, GLint size, GLenum type, GLsizei stride, uintptr_t pointer) {
	f(index, size, type, stride, (const void *)pointer);
}

static void glVertexAttribPointer(_glVertexAttribPointer f, GLuint index, GLint size, GLenum type, GLboolean normalized, GLsizei stride, uintptr_t pointer) {
	f(index, size, type, normalized, stride, (const void *)pointer);
}

static void glViewport(_glViewport f, GLint x, GLint y, GLsizei width, GLsizei height) {
	f(x, y, width, height);
}

static void glWaitSync(_glWaitSync f, uintptr_t sync, GLbitfield flags, GLuint64 timeout) {
	f((GLsync)sync, flags, timeout);
}

static void glShaderSource(_glShaderSource f, GLuint shader, GLsizei count, const GLchar *const*string, const GLint *length) {
	f(shader, count, string, length);
}

static void glTransformFeedbackVaryings(_glTransformFeedbackVaryings f, GLuint program, GLsizei count, const GLchar *const*varyings, GLenum bufferMode) {
	f(program, count, varyings, bufferMode);
}

extern void gloDebugMessage(unsigned int source, unsigned int type, unsigned int id, unsigned int severity, int length, char *message, uintptr_t token);

static void gloDebugTrampoline(GLenum source, GLenum type, GLuint id, GLenum severity, GLsizei length, const GLchar *message, const void *userParam) {
	gloDebugMessage(source, type, id, severity, length, (char *)message, (uintptr_t)userParam);
}

static void glDebugMessageCallback(_glDebugMessageCallback f, uintptr_t token) {
	if (token == 0) {
		f(NULL, NULL);
		return;
	}
	f(gloDebugTrampoline, (const void *)token);
}
*/
import "C"

func loadProcs(r *resolver) (*procs, error) {
	p := new(procs)
	if sym := C._glActiveTexture(r.resolve("glActiveTexture")); sym != nil {
		p.ActiveTexture = func(texture uint32) {
			C.glActiveTexture(sym, C.GLenum(texture))
		}
	}
	if sym := C._glAttachShader(r.resolve("glAttachShader")); sym != nil {
		p.AttachShader = func(program uint32, shader uint32) {
			C.glAttachShader(sym, C.GLuint(program), C.GLuint(shader))
		}
	}
	if sym := C._glBeginQuery(r.resolve("glBeginQuery")); sym != nil {
		p.BeginQuery = func(target uint32, id uint32) {
			C.glBeginQuery(sym, C.GLenum(target), C.GLuint(id))
		}
	}
	if sym := C._glBeginQueryEXT(r.resolve("glBeginQueryEXT")); sym != nil {
		p.BeginQueryEXT = func(target uint32, id uint32) {
			C.glBeginQueryEXT(sym, C.GLenum(target), C.GLuint(id))
		}
	}
	if sym := C._glBeginTransformFeedback(r.resolve("glBeginTransformFeedback")); sym != nil {
		p.BeginTransformFeedback = func(primitiveMode uint32) {
			C.glBeginTransformFeedback(sym, C.GLenum(primitiveMode))
		}
	}
	if sym := C._glBindAttribLocation(r.resolve("glBindAttribLocation")); sym != nil {
		p.BindAttribLocation = func(program uint32, index uint32, name *byte) {
			C.glBindAttribLocation(sym, C.GLuint(program), C.GLuint(index), (*C.GLchar)(unsafe.Pointer(name)))
		}
	}
	if sym := C._glBindBuffer(r.resolve("glBindBuffer")); sym != nil {
		p.BindBuffer = func(target uint32, buffer uint32) {
			C.glBindBuffer(sym, C.GLenum(target), C.GLuint(buffer))
		}
	}
	if sym := C._glBindBufferBase(r.resolve("glBindBufferBase")); sym != nil {
		p.BindBufferBase = func(target uint32, index uint32, buffer uint32) {
			C.glBindBufferBase(sym, C.GLenum(target), C.GLuint(index), C.GLuint(buffer))
		}
	}
	if sym := C._glBindBufferRange(r.resolve("glBindBufferRange")); sym != nil {
		p.BindBufferRange = func(target uint32, index uint32, buffer uint32, offset int, size int) {
			C.glBindBufferRange(sym, C.GLenum(target), C.GLuint(index), C.GLuint(buffer), C.GLintptr(offset), C.GLsizeiptr(size))
		}
	}
	if sym := C._glBindFramebuffer(r.resolve("glBindFramebuffer")); sym != nil {
		p.BindFramebuffer = func(target uint32, framebuffer uint32) {
			C.glBindFramebuffer(sym, C.GLenum(target), C.GLuint(framebuffer))
		}
	}
	if sym := C._glBindImageTexture(r.resolve("glBindImageTexture")); sym != nil {
		p.BindImageTexture = func(unit uint32, texture uint32, level int32, layered bool, layer int32, access uint32, format uint32) {
			C.glBindImageTexture(sym, C.GLuint(unit), C.GLuint(texture), C.GLint(level), glBool(layered), C.GLint(layer), C.GLenum(access), C.GLenum(format))
		}
	}
	if sym := C._glBindRenderbuffer(r.resolve("glBindRenderbuffer")); sym != nil {
		p.BindRenderbuffer = func(target uint32, renderbuffer uint32) {
			C.glBindRenderbuffer(sym, C.GLenum(target), C.GLuint(renderbuffer))
		}
	}
	if sym := C._glBindSampler(r.resolve("glBindSampler")); sym != nil {
		p.BindSampler = func(unit uint32, sampler uint32) {
			C.glBindSampler(sym, C.GLuint(unit), C.GLuint(sampler))
		}
	}
	if sym := C._glBindTexture(r.resolve("glBindTexture")); sym != nil {
		p.BindTexture = func(target uint32, texture uint32) {
			C.glBindTexture(sym, C.GLenum(target), C.GLuint(texture))
		}
	}
	if sym := C._glBindTransformFeedback(r.resolve("glBindTransformFeedback")); sym != nil {
		p.BindTransformFeedback = func(target uint32, id uint32) {
			C.glBindTransformFeedback(sym, C.GLenum(target), C.GLuint(id))
		}
	}
	if sym := C._glBindVertexArray(r.resolve("glBindVertexArray")); sym != nil {
		p.BindVertexArray = func(array uint32) {
			C.glBindVertexArray(sym, C.GLuint(array))
		}
	}
	if sym := C._glBindVertexArrayOES(r.resolve("glBindVertexArrayOES")); sym != nil {
		p.BindVertexArrayOES = func(array uint32) {
			C.glBindVertexArrayOES(sym, C.GLuint(array))
		}
	}
	if sym := C._glBlendColor(r.resolve("glBlendColor")); sym != nil {
		p.BlendColor = func(red float32, green float32, blue float32, alpha float32) {
			C.glBlendColor(sym, C.GLfloat(red), C.GLfloat(green), C.GLfloat(blue), C.GLfloat(alpha))
		}
	}
	if sym := C._glBlendEquation(r.resolve("glBlendEquation")); sym != nil {
		p.BlendEquation = func(mode uint32) {
			C.glBlendEquation(sym, C.GLenum(mode))
		}
	}
	if sym := C._glBlendEquationSeparate(r.resolve("glBlendEquationSeparate")); sym != nil {
		p.BlendEquationSeparate = func(modeRGB uint32, modeAlpha uint32) {
			C.glBlendEquationSeparate(sym, C.GLenum(modeRGB), C.GLenum(modeAlpha))
		}
	}
	if sym := C._glBlendFunc(r.resolve("glBlendFunc")); sym != nil {
		p.BlendFunc = func(sfactor uint32, dfactor uint32) {
			C.glBlendFunc(sym, C.GLenum(sfactor), C.GLenum(dfactor))
		}
	}
	if sym := C._glBlendFuncSeparate(r.resolve("glBlendFuncSeparate")); sym != nil {
		p.BlendFuncSeparate = func(srcRGB uint32, dstRGB uint32, srcAlpha uint32, dstAlpha uint32) {
			C.glBlendFuncSeparate(sym, C.GLenum(srcRGB), C.GLenum(dstRGB), C.GLenum(srcAlpha), C.GLenum(dstAlpha))
		}
	}
	if sym := C._glBlitFramebuffer(r.resolve("glBlitFramebuffer")); sym != nil {
		p.BlitFramebuffer = func(srcX0 int32, srcY0 int32, srcX1 int32, srcY1 int32, dstX0 int32, dstY0 int32, dstX1 int32, dstY1 int32, mask uint32, filter uint32) {
			C.glBlitFramebuffer(sym, C.GLint(srcX0), C.GLint(srcY0), C.GLint(srcX1), C.GLint(srcY1), C.GLint(dstX0), C.GLint(dstY0), C.GLint(dstX1), C.GLint(dstY1), C.GLbitfield(mask), C.GLenum(filter))
		}
	}
	if sym := C._glBufferData(r.resolve("glBufferData")); sym != nil {
		p.BufferData = func(target uint32, size int, data unsafe.Pointer, usage uint32) {
			C.glBufferData(sym, C.GLenum(target), C.GLsizeiptr(size), data, C.GLenum(usage))
		}
	}
	if sym := C._glBufferStorage(r.resolve("glBufferStorage")); sym != nil {
		p.BufferStorage = func(target uint32, size int, data unsafe.Pointer, flags uint32) {
			C.glBufferStorage(sym, C.GLenum(target), C.GLsizeiptr(size), data, C.GLbitfield(flags))
		}
	}
	if sym := C._glBufferStorageEXT(r.resolve("glBufferStorageEXT")); sym != nil {
		p.BufferStorageEXT = func(target uint32, size int, data unsafe.Pointer, flags uint32) {
			C.glBufferStorageEXT(sym, C.GLenum(target), C.GLsizeiptr(size), data, C.GLbitfield(flags))
		}
	}
	if sym := C._glBufferSubData(r.resolve("glBufferSubData")); sym != nil {
		p.BufferSubData = func(target uint32, offset int, size int, data unsafe.Pointer) {
			C.glBufferSubData(sym, C.GLenum(target), C.GLintptr(offset), C.GLsizeiptr(size), data)
		}
	}
	if sym := C._glCheckFramebufferStatus(r.resolve("glCheckFramebufferStatus")); sym != nil {
		p.CheckFramebufferStatus = func(target uint32) uint32 {
			return uint32(C.glCheckFramebufferStatus(sym, C.GLenum(target)))
		}
	}
	if sym := C._glClear(r.resolve("glClear")); sym != nil {
		p.Clear = func(mask uint32) {
			C.glClear(sym, C.GLbitfield(mask))
		}
	}
	if sym := C._glClearBufferfi(r.resolve("glClearBufferfi")); sym != nil {
		p.ClearBufferfi = func(buffer uint32, drawbuffer int32, depth float32, stencil int32) {
			C.glClearBufferfi(sym, C.GLenum(buffer), C.GLint(drawbuffer), C.GLfloat(depth), C.GLint(stencil))
		}
	}
	if sym := C._glClearBufferfv(r.resolve("glClearBufferfv")); sym != nil {
		p.ClearBufferfv = func(buffer uint32, drawbuffer int32, value *float32) {
			C.glClearBufferfv(sym, C.GLenum(buffer), C.GLint(drawbuffer), (*C.GLfloat)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glClearBufferiv(r.resolve("glClearBufferiv")); sym != nil {
		p.ClearBufferiv = func(buffer uint32, drawbuffer int32, value *int32) {
			C.glClearBufferiv(sym, C.GLenum(buffer), C.GLint(drawbuffer), (*C.GLint)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glClearBufferuiv(r.resolve("glClearBufferuiv")); sym != nil {
		p.ClearBufferuiv = func(buffer uint32, drawbuffer int32, value *uint32) {
			C.glClearBufferuiv(sym, C.GLenum(buffer), C.GLint(drawbuffer), (*C.GLuint)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glClearColor(r.resolve("glClearColor")); sym != nil {
		p.ClearColor = func(red float32, green float32, blue float32, alpha float32) {
			C.glClearColor(sym, C.GLfloat(red), C.GLfloat(green), C.GLfloat(blue), C.GLfloat(alpha))
		}
	}
	if sym := C._glClearDepth(r.resolve("glClearDepth")); sym != nil {
		p.ClearDepth = func(depth float64) {
			C.glClearDepth(sym, C.GLdouble(depth))
		}
	}
	if sym := C._glClearDepthf(r.resolve("glClearDepthf")); sym != nil {
		p.ClearDepthf = func(d float32) {
			C.glClearDepthf(sym, C.GLfloat(d))
		}
	}
	if sym := C._glClearStencil(r.resolve("glClearStencil")); sym != nil {
		p.ClearStencil = func(s int32) {
			C.glClearStencil(sym, C.GLint(s))
		}
	}
	if sym := C._glClientWaitSync(r.resolve("glClientWaitSync")); sym != nil {
		p.ClientWaitSync = func(sync uintptr, flags uint32, timeout uint64) uint32 {
			return uint32(C.glClientWaitSync(sym, C.uintptr_t(sync), C.GLbitfield(flags), C.GLuint64(timeout)))
		}
	}
	if sym := C._glColorMask(r.resolve("glColorMask")); sym != nil {
		p.ColorMask = func(red bool, green bool, blue bool, alpha bool) {
			C.glColorMask(sym, glBool(red), glBool(green), glBool(blue), glBool(alpha))
		}
	}
	if sym := C._glCompileShader(r.resolve("glCompileShader")); sym != nil {
		p.CompileShader = func(shader uint32) {
			C.glCompileShader(sym, C.GLuint(shader))
		}
	}
	if sym := C._glCopyBufferSubData(r.resolve("glCopyBufferSubData")); sym != nil {
		p.CopyBufferSubData = func(readTarget uint32, writeTarget uint32, readOffset int, writeOffset int, size int) {
			C.glCopyBufferSubData(sym, C.GLenum(readTarget), C.GLenum(writeTarget), C.GLintptr(readOffset), C.GLintptr(writeOffset), C.GLsizeiptr(size))
		}
	}
	if sym := C._glCopyTexSubImage2D(r.resolve("glCopyTexSubImage2D")); sym != nil {
		p.CopyTexSubImage2D = func(target uint32, level int32, xoffset int32, yoffset int32, x int32, y int32, width int32, height int32) {
			C.glCopyTexSubImage2D(sym, C.GLenum(target), C.GLint(level), C.GLint(xoffset), C.GLint(yoffset), C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height))
		}
	}
	if sym := C._glCreateProgram(r.resolve("glCreateProgram")); sym != nil {
		p.CreateProgram = func() uint32 {
			return uint32(C.glCreateProgram(sym))
		}
	}
	if sym := C._glCreateShader(r.resolve("glCreateShader")); sym != nil {
		p.CreateShader = func(typ uint32) uint32 {
			return uint32(C.glCreateShader(sym, C.GLenum(typ)))
		}
	}
	if sym := C._glCullFace(r.resolve("glCullFace")); sym != nil {
		p.CullFace = func(mode uint32) {
			C.glCullFace(sym, C.GLenum(mode))
		}
	}
	if sym := C._glDebugMessageControl(r.resolve("glDebugMessageControl")); sym != nil {
		p.DebugMessageControl = func(source uint32, typ uint32, severity uint32, count int32, ids *uint32, enabled bool) {
			C.glDebugMessageControl(sym, C.GLenum(source), C.GLenum(typ), C.GLenum(severity), C.GLsizei(count), (*C.GLuint)(unsafe.Pointer(ids)), glBool(enabled))
		}
	}
	if sym := C._glDebugMessageControlKHR(r.resolve("glDebugMessageControlKHR")); sym != nil {
		p.DebugMessageControlKHR = func(source uint32, typ uint32, severity uint32, count int32, ids *uint32, enabled bool) {
			C.glDebugMessageControlKHR(sym, C.GLenum(source), C.GLenum(typ), C.GLenum(severity), C.GLsizei(count), (*C.GLuint)(unsafe.Pointer(ids)), glBool(enabled))
		}
	}
	if sym := C._glDebugMessageInsert(r.resolve("glDebugMessageInsert")); sym != nil {
		p.DebugMessageInsert = func(source uint32, typ uint32, id uint32, severity uint32, length int32, buf *byte) {
			C.glDebugMessageInsert(sym, C.GLenum(source), C.GLenum(typ), C.GLuint(id), C.GLenum(severity), C.GLsizei(length), (*C.GLchar)(unsafe.Pointer(buf)))
		}
	}
	if sym := C._glDebugMessageInsertKHR(r.resolve("glDebugMessageInsertKHR")); sym != nil {
		p.DebugMessageInsertKHR = func(source uint32, typ uint32, id uint32, severity uint32, length int32, buf *byte) {
			C.glDebugMessageInsertKHR(sym, C.GLenum(source), C.GLenum(typ), C.GLuint(id), C.GLenum(severity), C.GLsizei(length), (*C.GLchar)(unsafe.Pointer(buf)))
		}
	}
	if sym := C._glDeleteBuffers(r.resolve("glDeleteBuffers")); sym != nil {
		p.DeleteBuffers = func(n int32, buffers *uint32) {
			C.glDeleteBuffers(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(buffers)))
		}
	}
	if sym := C._glDeleteFramebuffers(r.resolve("glDeleteFramebuffers")); sym != nil {
		p.DeleteFramebuffers = func(n int32, framebuffers *uint32) {
			C.glDeleteFramebuffers(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(framebuffers)))
		}
	}
	if sym := C._glDeleteProgram(r.resolve("glDeleteProgram")); sym != nil {
		p.DeleteProgram = func(program uint32) {
			C.glDeleteProgram(sym, C.GLuint(program))
		}
	}
	if sym := C._glDeleteQueries(r.resolve("glDeleteQueries")); sym != nil {
		p.DeleteQueries = func(n int32, ids *uint32) {
			C.glDeleteQueries(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(ids)))
		}
	}
	if sym := C._glDeleteQueriesEXT(r.resolve("glDeleteQueriesEXT")); sym != nil {
		p.DeleteQueriesEXT = func(n int32, ids *uint32) {
			C.glDeleteQueriesEXT(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(ids)))
		}
	}
	if sym := C._glDeleteRenderbuffers(r.resolve("glDeleteRenderbuffers")); sym != nil {
		p.DeleteRenderbuffers = func(n int32, renderbuffers *uint32) {
			C.glDeleteRenderbuffers(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(renderbuffers)))
		}
	}
	if sym := C._glDeleteSamplers(r.resolve("glDeleteSamplers")); sym != nil {
		p.DeleteSamplers = func(count int32, samplers *uint32) {
			C.glDeleteSamplers(sym, C.GLsizei(count), (*C.GLuint)(unsafe.Pointer(samplers)))
		}
	}
	if sym := C._glDeleteShader(r.resolve("glDeleteShader")); sym != nil {
		p.DeleteShader = func(shader uint32) {
			C.glDeleteShader(sym, C.GLuint(shader))
		}
	}
	if sym := C._glDeleteSync(r.resolve("glDeleteSync")); sym != nil {
		p.DeleteSync = func(sync uintptr) {
			C.glDeleteSync(sym, C.uintptr_t(sync))
		}
	}
	if sym := C._glDeleteTextures(r.resolve("glDeleteTextures")); sym != nil {
		p.DeleteTextures = func(n int32, textures *uint32) {
			C.glDeleteTextures(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(textures)))
		}
	}
	if sym := C._glDeleteTransformFeedbacks(r.resolve("glDeleteTransformFeedbacks")); sym != nil {
		p.DeleteTransformFeedbacks = func(n int32, ids *uint32) {
			C.glDeleteTransformFeedbacks(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(ids)))
		}
	}
	if sym := C._glDeleteVertexArrays(r.resolve("glDeleteVertexArrays")); sym != nil {
		p.DeleteVertexArrays = func(n int32, arrays *uint32) {
			C.glDeleteVertexArrays(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(arrays)))
		}
	}
	if sym := C._glDeleteVertexArraysOES(r.resolve("glDeleteVertexArraysOES")); sym != nil {
		p.DeleteVertexArraysOES = func(n int32, arrays *uint32) {
			C.glDeleteVertexArraysOES(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(arrays)))
		}
	}
	if sym := C._glDepthFunc(r.resolve("glDepthFunc")); sym != nil {
		p.DepthFunc = func(fn uint32) {
			C.glDepthFunc(sym, C.GLenum(fn))
		}
	}
	if sym := C._glDepthMask(r.resolve("glDepthMask")); sym != nil {
		p.DepthMask = func(flag bool) {
			C.glDepthMask(sym, glBool(flag))
		}
	}
	if sym := C._glDepthRange(r.resolve("glDepthRange")); sym != nil {
		p.DepthRange = func(n float64, f float64) {
			C.glDepthRange(sym, C.GLdouble(n), C.GLdouble(f))
		}
	}
	if sym := C._glDepthRangef(r.resolve("glDepthRangef")); sym != nil {
		p.DepthRangef = func(n float32, f float32) {
			C.glDepthRangef(sym, C.GLfloat(n), C.GLfloat(f))
		}
	}
	if sym := C._glDetachShader(r.resolve("glDetachShader")); sym != nil {
		p.DetachShader = func(program uint32, shader uint32) {
			C.glDetachShader(sym, C.GLuint(program), C.GLuint(shader))
		}
	}
	if sym := C._glDisable(r.resolve("glDisable")); sym != nil {
		p.Disable = func(cap uint32) {
			C.glDisable(sym, C.GLenum(cap))
		}
	}
	if sym := C._glDisableVertexAttribArray(r.resolve("glDisableVertexAttribArray")); sym != nil {
		p.DisableVertexAttribArray = func(index uint32) {
			C.glDisableVertexAttribArray(sym, C.GLuint(index))
		}
	}
	if sym := C._glDiscardFramebufferEXT(r.resolve("glDiscardFramebufferEXT")); sym != nil {
		p.DiscardFramebufferEXT = func(target uint32, numAttachments int32, attachments *uint32) {
			C.glDiscardFramebufferEXT(sym, C.GLenum(target), C.GLsizei(numAttachments), (*C.GLenum)(unsafe.Pointer(attachments)))
		}
	}
	if sym := C._glDispatchCompute(r.resolve("glDispatchCompute")); sym != nil {
		p.DispatchCompute = func(numGroupsX uint32, numGroupsY uint32, numGroupsZ uint32) {
			C.glDispatchCompute(sym, C.GLuint(numGroupsX), C.GLuint(numGroupsY), C.GLuint(numGroupsZ))
		}
	}
	if sym := C._glDrawArrays(r.resolve("glDrawArrays")); sym != nil {
		p.DrawArrays = func(mode uint32, first int32, count int32) {
			C.glDrawArrays(sym, C.GLenum(mode), C.GLint(first), C.GLsizei(count))
		}
	}
	if sym := C._glDrawArraysIndirect(r.resolve("glDrawArraysIndirect")); sym != nil {
		p.DrawArraysIndirect = func(mode uint32, indirect uintptr) {
			C.glDrawArraysIndirect(sym, C.GLenum(mode), C.uintptr_t(indirect))
		}
	}
	if sym := C._glDrawArraysInstanced(r.resolve("glDrawArraysInstanced")); sym != nil {
		p.DrawArraysInstanced = func(mode uint32, first int32, count int32, instancecount int32) {
			C.glDrawArraysInstanced(sym, C.GLenum(mode), C.GLint(first), C.GLsizei(count), C.GLsizei(instancecount))
		}
	}
	if sym := C._glDrawArraysInstancedANGLE(r.resolve("glDrawArraysInstancedANGLE")); sym != nil {
		p.DrawArraysInstancedANGLE = func(mode uint32, first int32, count int32, instancecount int32) {
			C.glDrawArraysInstancedANGLE(sym, C.GLenum(mode), C.GLint(first), C.GLsizei(count), C.GLsizei(instancecount))
		}
	}
	if sym := C._glDrawArraysInstancedEXT(r.resolve("glDrawArraysInstancedEXT")); sym != nil {
		p.DrawArraysInstancedEXT = func(mode uint32, first int32, count int32, instancecount int32) {
			C.glDrawArraysInstancedEXT(sym, C.GLenum(mode), C.GLint(first), C.GLsizei(count), C.GLsizei(instancecount))
		}
	}
	if sym := C._glDrawArraysInstancedBaseInstance(r.resolve("glDrawArraysInstancedBaseInstance")); sym != nil {
		p.DrawArraysInstancedBaseInstance = func(mode uint32, first int32, count int32, instancecount int32, baseinstance uint32) {
			C.glDrawArraysInstancedBaseInstance(sym, C.GLenum(mode), C.GLint(first), C.GLsizei(count), C.GLsizei(instancecount), C.GLuint(baseinstance))
		}
	}
	if sym := C._glDrawArraysInstancedBaseInstanceEXT(r.resolve("glDrawArraysInstancedBaseInstanceEXT")); sym != nil {
		p.DrawArraysInstancedBaseInstanceEXT = func(mode uint32, first int32, count int32, instancecount int32, baseinstance uint32) {
			C.glDrawArraysInstancedBaseInstanceEXT(sym, C.GLenum(mode), C.GLint(first), C.GLsizei(count), C.GLsizei(instancecount), C.GLuint(baseinstance))
		}
	}
	if sym := C._glDrawBuffers(r.resolve("glDrawBuffers")); sym != nil {
		p.DrawBuffers = func(n int32, bufs *uint32) {
			C.glDrawBuffers(sym, C.GLsizei(n), (*C.GLenum)(unsafe.Pointer(bufs)))
		}
	}
	if sym := C._glDrawBuffersEXT(r.resolve("glDrawBuffersEXT")); sym != nil {
		p.DrawBuffersEXT = func(n int32, bufs *uint32) {
			C.glDrawBuffersEXT(sym, C.GLsizei(n), (*C.GLenum)(unsafe.Pointer(bufs)))
		}
	}
	if sym := C._glDrawElements(r.resolve("glDrawElements")); sym != nil {
		p.DrawElements = func(mode uint32, count int32, typ uint32, indices uintptr) {
			C.glDrawElements(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices))
		}
	}
	if sym := C._glDrawElementsBaseVertex(r.resolve("glDrawElementsBaseVertex")); sym != nil {
		p.DrawElementsBaseVertex = func(mode uint32, count int32, typ uint32, indices uintptr, basevertex int32) {
			C.glDrawElementsBaseVertex(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices), C.GLint(basevertex))
		}
	}
	if sym := C._glDrawElementsBaseVertexEXT(r.resolve("glDrawElementsBaseVertexEXT")); sym != nil {
		p.DrawElementsBaseVertexEXT = func(mode uint32, count int32, typ uint32, indices uintptr, basevertex int32) {
			C.glDrawElementsBaseVertexEXT(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices), C.GLint(basevertex))
		}
	}
	if sym := C._glDrawElementsBaseVertexOES(r.resolve("glDrawElementsBaseVertexOES")); sym != nil {
		p.DrawElementsBaseVertexOES = func(mode uint32, count int32, typ uint32, indices uintptr, basevertex int32) {
			C.glDrawElementsBaseVertexOES(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices), C.GLint(basevertex))
		}
	}
	if sym := C._glDrawElementsIndirect(r.resolve("glDrawElementsIndirect")); sym != nil {
		p.DrawElementsIndirect = func(mode uint32, typ uint32, indirect uintptr) {
			C.glDrawElementsIndirect(sym, C.GLenum(mode), C.GLenum(typ), C.uintptr_t(indirect))
		}
	}
	if sym := C._glDrawElementsInstanced(r.resolve("glDrawElementsInstanced")); sym != nil {
		p.DrawElementsInstanced = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32) {
			C.glDrawElementsInstanced(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices), C.GLsizei(instancecount))
		}
	}
	if sym := C._glDrawElementsInstancedANGLE(r.resolve("glDrawElementsInstancedANGLE")); sym != nil {
		p.DrawElementsInstancedANGLE = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32) {
			C.glDrawElementsInstancedANGLE(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices), C.GLsizei(instancecount))
		}
	}
	if sym := C._glDrawElementsInstancedEXT(r.resolve("glDrawElementsInstancedEXT")); sym != nil {
		p.DrawElementsInstancedEXT = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32) {
			C.glDrawElementsInstancedEXT(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices), C.GLsizei(instancecount))
		}
	}
	if sym := C._glDrawElementsInstancedBaseVertex(r.resolve("glDrawElementsInstancedBaseVertex")); sym != nil {
		p.DrawElementsInstancedBaseVertex = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32) {
			C.glDrawElementsInstancedBaseVertex(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices), C.GLsizei(instancecount), C.GLint(basevertex))
		}
	}
	if sym := C._glDrawElementsInstancedBaseVertexEXT(r.resolve("glDrawElementsInstancedBaseVertexEXT")); sym != nil {
		p.DrawElementsInstancedBaseVertexEXT = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32) {
			C.glDrawElementsInstancedBaseVertexEXT(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices), C.GLsizei(instancecount), C.GLint(basevertex))
		}
	}
	if sym := C._glDrawElementsInstancedBaseVertexOES(r.resolve("glDrawElementsInstancedBaseVertexOES")); sym != nil {
		p.DrawElementsInstancedBaseVertexOES = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32) {
			C.glDrawElementsInstancedBaseVertexOES(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices), C.GLsizei(instancecount), C.GLint(basevertex))
		}
	}
	if sym := C._glDrawElementsInstancedBaseVertexBaseInstance(r.resolve("glDrawElementsInstancedBaseVertexBaseInstance")); sym != nil {
		p.DrawElementsInstancedBaseVertexBaseInstance = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32, baseinstance uint32) {
			C.glDrawElementsInstancedBaseVertexBaseInstance(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices), C.GLsizei(instancecount), C.GLint(basevertex), C.GLuint(baseinstance))
		}
	}
	if sym := C._glDrawElementsInstancedBaseVertexBaseInstanceEXT(r.resolve("glDrawElementsInstancedBaseVertexBaseInstanceEXT")); sym != nil {
		p.DrawElementsInstancedBaseVertexBaseInstanceEXT = func(mode uint32, count int32, typ uint32, indices uintptr, instancecount int32, basevertex int32, baseinstance uint32) {
			C.glDrawElementsInstancedBaseVertexBaseInstanceEXT(sym, C.GLenum(mode), C.GLsizei(count), C.GLenum(typ), C.uintptr_t(indices), C.GLsizei(instancecount), C.GLint(basevertex), C.GLuint(baseinstance))
		}
	}
	if sym := C._glEnable(r.resolve("glEnable")); sym != nil {
		p.Enable = func(cap uint32) {
			C.glEnable(sym, C.GLenum(cap))
		}
	}
	if sym := C._glEnableVertexAttribArray(r.resolve("glEnableVertexAttribArray")); sym != nil {
		p.EnableVertexAttribArray = func(index uint32) {
			C.glEnableVertexAttribArray(sym, C.GLuint(index))
		}
	}
	if sym := C._glEndQuery(r.resolve("glEndQuery")); sym != nil {
		p.EndQuery = func(target uint32) {
			C.glEndQuery(sym, C.GLenum(target))
		}
	}
	if sym := C._glEndQueryEXT(r.resolve("glEndQueryEXT")); sym != nil {
		p.EndQueryEXT = func(target uint32) {
			C.glEndQueryEXT(sym, C.GLenum(target))
		}
	}
	if sym := C._glEndTransformFeedback(r.resolve("glEndTransformFeedback")); sym != nil {
		p.EndTransformFeedback = func() {
			C.glEndTransformFeedback(sym)
		}
	}
	if sym := C._glFenceSync(r.resolve("glFenceSync")); sym != nil {
		p.FenceSync = func(condition uint32, flags uint32) uintptr {
			return uintptr(C.glFenceSync(sym, C.GLenum(condition), C.GLbitfield(flags)))
		}
	}
	if sym := C._glFinish(r.resolve("glFinish")); sym != nil {
		p.Finish = func() {
			C.glFinish(sym)
		}
	}
	if sym := C._glFlush(r.resolve("glFlush")); sym != nil {
		p.Flush = func() {
			C.glFlush(sym)
		}
	}
	if sym := C._glFramebufferRenderbuffer(r.resolve("glFramebufferRenderbuffer")); sym != nil {
		p.FramebufferRenderbuffer = func(target uint32, attachment uint32, renderbuffertarget uint32, renderbuffer uint32) {
			C.glFramebufferRenderbuffer(sym, C.GLenum(target), C.GLenum(attachment), C.GLenum(renderbuffertarget), C.GLuint(renderbuffer))
		}
	}
	if sym := C._glFramebufferTexture2D(r.resolve("glFramebufferTexture2D")); sym != nil {
		p.FramebufferTexture2D = func(target uint32, attachment uint32, textarget uint32, texture uint32, level int32) {
			C.glFramebufferTexture2D(sym, C.GLenum(target), C.GLenum(attachment), C.GLenum(textarget), C.GLuint(texture), C.GLint(level))
		}
	}
	if sym := C._glFramebufferTextureLayer(r.resolve("glFramebufferTextureLayer")); sym != nil {
		p.FramebufferTextureLayer = func(target uint32, attachment uint32, texture uint32, level int32, layer int32) {
			C.glFramebufferTextureLayer(sym, C.GLenum(target), C.GLenum(attachment), C.GLuint(texture), C.GLint(level), C.GLint(layer))
		}
	}
	if sym := C._glFrontFace(r.resolve("glFrontFace")); sym != nil {
		p.FrontFace = func(mode uint32) {
			C.glFrontFace(sym, C.GLenum(mode))
		}
	}
	if sym := C._glGenBuffers(r.resolve("glGenBuffers")); sym != nil {
		p.GenBuffers = func(n int32, buffers *uint32) {
			C.glGenBuffers(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(buffers)))
		}
	}
	if sym := C._glGenFramebuffers(r.resolve("glGenFramebuffers")); sym != nil {
		p.GenFramebuffers = func(n int32, framebuffers *uint32) {
			C.glGenFramebuffers(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(framebuffers)))
		}
	}
	if sym := C._glGenQueries(r.resolve("glGenQueries")); sym != nil {
		p.GenQueries = func(n int32, ids *uint32) {
			C.glGenQueries(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(ids)))
		}
	}
	if sym := C._glGenQueriesEXT(r.resolve("glGenQueriesEXT")); sym != nil {
		p.GenQueriesEXT = func(n int32, ids *uint32) {
			C.glGenQueriesEXT(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(ids)))
		}
	}
	if sym := C._glGenRenderbuffers(r.resolve("glGenRenderbuffers")); sym != nil {
		p.GenRenderbuffers = func(n int32, renderbuffers *uint32) {
			C.glGenRenderbuffers(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(renderbuffers)))
		}
	}
	if sym := C._glGenSamplers(r.resolve("glGenSamplers")); sym != nil {
		p.GenSamplers = func(count int32, samplers *uint32) {
			C.glGenSamplers(sym, C.GLsizei(count), (*C.GLuint)(unsafe.Pointer(samplers)))
		}
	}
	if sym := C._glGenTextures(r.resolve("glGenTextures")); sym != nil {
		p.GenTextures = func(n int32, textures *uint32) {
			C.glGenTextures(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(textures)))
		}
	}
	if sym := C._glGenTransformFeedbacks(r.resolve("glGenTransformFeedbacks")); sym != nil {
		p.GenTransformFeedbacks = func(n int32, ids *uint32) {
			C.glGenTransformFeedbacks(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(ids)))
		}
	}
	if sym := C._glGenVertexArrays(r.resolve("glGenVertexArrays")); sym != nil {
		p.GenVertexArrays = func(n int32, arrays *uint32) {
			C.glGenVertexArrays(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(arrays)))
		}
	}
	if sym := C._glGenVertexArraysOES(r.resolve("glGenVertexArraysOES")); sym != nil {
		p.GenVertexArraysOES = func(n int32, arrays *uint32) {
			C.glGenVertexArraysOES(sym, C.GLsizei(n), (*C.GLuint)(unsafe.Pointer(arrays)))
		}
	}
	if sym := C._glGenerateMipmap(r.resolve("glGenerateMipmap")); sym != nil {
		p.GenerateMipmap = func(target uint32) {
			C.glGenerateMipmap(sym, C.GLenum(target))
		}
	}
	if sym := C._glGetActiveAttrib(r.resolve("glGetActiveAttrib")); sym != nil {
		p.GetActiveAttrib = func(program uint32, index uint32, bufSize int32, length *int32, size *int32, typ *uint32, name *byte) {
			C.glGetActiveAttrib(sym, C.GLuint(program), C.GLuint(index), C.GLsizei(bufSize), (*C.GLsizei)(unsafe.Pointer(length)), (*C.GLint)(unsafe.Pointer(size)), (*C.GLenum)(unsafe.Pointer(typ)), (*C.GLchar)(unsafe.Pointer(name)))
		}
	}
	if sym := C._glGetActiveUniform(r.resolve("glGetActiveUniform")); sym != nil {
		p.GetActiveUniform = func(program uint32, index uint32, bufSize int32, length *int32, size *int32, typ *uint32, name *byte) {
			C.glGetActiveUniform(sym, C.GLuint(program), C.GLuint(index), C.GLsizei(bufSize), (*C.GLsizei)(unsafe.Pointer(length)), (*C.GLint)(unsafe.Pointer(size)), (*C.GLenum)(unsafe.Pointer(typ)), (*C.GLchar)(unsafe.Pointer(name)))
		}
	}
	if sym := C._glGetAttribLocation(r.resolve("glGetAttribLocation")); sym != nil {
		p.GetAttribLocation = func(program uint32, name *byte) int32 {
			return int32(C.glGetAttribLocation(sym, C.GLuint(program), (*C.GLchar)(unsafe.Pointer(name))))
		}
	}
	if sym := C._glGetBooleanv(r.resolve("glGetBooleanv")); sym != nil {
		p.GetBooleanv = func(pname uint32, data *uint8) {
			C.glGetBooleanv(sym, C.GLenum(pname), (*C.GLboolean)(unsafe.Pointer(data)))
		}
	}
	if sym := C._glGetBufferParameteriv(r.resolve("glGetBufferParameteriv")); sym != nil {
		p.GetBufferParameteriv = func(target uint32, pname uint32, params *int32) {
			C.glGetBufferParameteriv(sym, C.GLenum(target), C.GLenum(pname), (*C.GLint)(unsafe.Pointer(params)))
		}
	}
	if sym := C._glGetBufferSubData(r.resolve("glGetBufferSubData")); sym != nil {
		p.GetBufferSubData = func(target uint32, offset int, size int, data unsafe.Pointer) {
			C.glGetBufferSubData(sym, C.GLenum(target), C.GLintptr(offset), C.GLsizeiptr(size), data)
		}
	}
	if sym := C._glGetDebugMessageLog(r.resolve("glGetDebugMessageLog")); sym != nil {
		p.GetDebugMessageLog = func(count uint32, bufSize int32, sources *uint32, types *uint32, ids *uint32, severities *uint32, lengths *int32, messageLog *byte) uint32 {
			return uint32(C.glGetDebugMessageLog(sym, C.GLuint(count), C.GLsizei(bufSize), (*C.GLenum)(unsafe.Pointer(sources)), (*C.GLenum)(unsafe.Pointer(types)), (*C.GLuint)(unsafe.Pointer(ids)), (*C.GLenum)(unsafe.Pointer(severities)), (*C.GLsizei)(unsafe.Pointer(lengths)), (*C.GLchar)(unsafe.Pointer(messageLog))))
		}
	}
	if sym := C._glGetDebugMessageLogKHR(r.resolve("glGetDebugMessageLogKHR")); sym != nil {
		p.GetDebugMessageLogKHR = func(count uint32, bufSize int32, sources *uint32, types *uint32, ids *uint32, severities *uint32, lengths *int32, messageLog *byte) uint32 {
			return uint32(C.glGetDebugMessageLogKHR(sym, C.GLuint(count), C.GLsizei(bufSize), (*C.GLenum)(unsafe.Pointer(sources)), (*C.GLenum)(unsafe.Pointer(types)), (*C.GLuint)(unsafe.Pointer(ids)), (*C.GLenum)(unsafe.Pointer(severities)), (*C.GLsizei)(unsafe.Pointer(lengths)), (*C.GLchar)(unsafe.Pointer(messageLog))))
		}
	}
	if sym := C._glGetError(r.resolve("glGetError")); sym != nil {
		p.GetError = func() uint32 {
			return uint32(C.glGetError(sym))
		}
	}
	if sym := C._glGetFloatv(r.resolve("glGetFloatv")); sym != nil {
		p.GetFloatv = func(pname uint32, data *float32) {
			C.glGetFloatv(sym, C.GLenum(pname), (*C.GLfloat)(unsafe.Pointer(data)))
		}
	}
	if sym := C._glGetFramebufferAttachmentParameteriv(r.resolve("glGetFramebufferAttachmentParameteriv")); sym != nil {
		p.GetFramebufferAttachmentParameteriv = func(target uint32, attachment uint32, pname uint32, params *int32) {
			C.glGetFramebufferAttachmentParameteriv(sym, C.GLenum(target), C.GLenum(attachment), C.GLenum(pname), (*C.GLint)(unsafe.Pointer(params)))
		}
	}
	if sym := C._glGetIntegeri_v(r.resolve("glGetIntegeri_v")); sym != nil {
		p.GetIntegeri_v = func(target uint32, index uint32, data *int32) {
			C.glGetIntegeri_v(sym, C.GLenum(target), C.GLuint(index), (*C.GLint)(unsafe.Pointer(data)))
		}
	}
	if sym := C._glGetIntegerv(r.resolve("glGetIntegerv")); sym != nil {
		p.GetIntegerv = func(pname uint32, data *int32) {
			C.glGetIntegerv(sym, C.GLenum(pname), (*C.GLint)(unsafe.Pointer(data)))
		}
	}
	if sym := C._glGetObjectLabel(r.resolve("glGetObjectLabel")); sym != nil {
		p.GetObjectLabel = func(identifier uint32, name uint32, bufSize int32, length *int32, label *byte) {
			C.glGetObjectLabel(sym, C.GLenum(identifier), C.GLuint(name), C.GLsizei(bufSize), (*C.GLsizei)(unsafe.Pointer(length)), (*C.GLchar)(unsafe.Pointer(label)))
		}
	}
	if sym := C._glGetObjectLabelKHR(r.resolve("glGetObjectLabelKHR")); sym != nil {
		p.GetObjectLabelKHR = func(identifier uint32, name uint32, bufSize int32, length *int32, label *byte) {
			C.glGetObjectLabelKHR(sym, C.GLenum(identifier), C.GLuint(name), C.GLsizei(bufSize), (*C.GLsizei)(unsafe.Pointer(length)), (*C.GLchar)(unsafe.Pointer(label)))
		}
	}
	if sym := C._glGetObjectPtrLabel(r.resolve("glGetObjectPtrLabel")); sym != nil {
		p.GetObjectPtrLabel = func(ptr uintptr, bufSize int32, length *int32, label *byte) {
			C.glGetObjectPtrLabel(sym, C.uintptr_t(ptr), C.GLsizei(bufSize), (*C.GLsizei)(unsafe.Pointer(length)), (*C.GLchar)(unsafe.Pointer(label)))
		}
	}
	if sym := C._glGetObjectPtrLabelKHR(r.resolve("glGetObjectPtrLabelKHR")); sym != nil {
		p.GetObjectPtrLabelKHR = func(ptr uintptr, bufSize int32, length *int32, label *byte) {
			C.glGetObjectPtrLabelKHR(sym, C.uintptr_t(ptr), C.GLsizei(bufSize), (*C.GLsizei)(unsafe.Pointer(length)), (*C.GLchar)(unsafe.Pointer(label)))
		}
	}
	if sym := C._glGetProgramInfoLog(r.resolve("glGetProgramInfoLog")); sym != nil {
		p.GetProgramInfoLog = func(program uint32, bufSize int32, length *int32, infoLog *byte) {
			C.glGetProgramInfoLog(sym, C.GLuint(program), C.GLsizei(bufSize), (*C.GLsizei)(unsafe.Pointer(length)), (*C.GLchar)(unsafe.Pointer(infoLog)))
		}
	}
	if sym := C._glGetProgramiv(r.resolve("glGetProgramiv")); sym != nil {
		p.GetProgramiv = func(program uint32, pname uint32, params *int32) {
			C.glGetProgramiv(sym, C.GLuint(program), C.GLenum(pname), (*C.GLint)(unsafe.Pointer(params)))
		}
	}
	if sym := C._glGetQueryObjectuiv(r.resolve("glGetQueryObjectuiv")); sym != nil {
		p.GetQueryObjectuiv = func(id uint32, pname uint32, params *uint32) {
			C.glGetQueryObjectuiv(sym, C.GLuint(id), C.GLenum(pname), (*C.GLuint)(unsafe.Pointer(params)))
		}
	}
	if sym := C._glGetQueryObjectuivEXT(r.resolve("glGetQueryObjectuivEXT")); sym != nil {
		p.GetQueryObjectuivEXT = func(id uint32, pname uint32, params *uint32) {
			C.glGetQueryObjectuivEXT(sym, C.GLuint(id), C.GLenum(pname), (*C.GLuint)(unsafe.Pointer(params)))
		}
	}
	if sym := C._glGetRenderbufferParameteriv(r.resolve("glGetRenderbufferParameteriv")); sym != nil {
		p.GetRenderbufferParameteriv = func(target uint32, pname uint32, params *int32) {
			C.glGetRenderbufferParameteriv(sym, C.GLenum(target), C.GLenum(pname), (*C.GLint)(unsafe.Pointer(params)))
		}
	}
	if sym := C._glGetShaderInfoLog(r.resolve("glGetShaderInfoLog")); sym != nil {
		p.GetShaderInfoLog = func(shader uint32, bufSize int32, length *int32, infoLog *byte) {
			C.glGetShaderInfoLog(sym, C.GLuint(shader), C.GLsizei(bufSize), (*C.GLsizei)(unsafe.Pointer(length)), (*C.GLchar)(unsafe.Pointer(infoLog)))
		}
	}
	if sym := C._glGetShaderiv(r.resolve("glGetShaderiv")); sym != nil {
		p.GetShaderiv = func(shader uint32, pname uint32, params *int32) {
			C.glGetShaderiv(sym, C.GLuint(shader), C.GLenum(pname), (*C.GLint)(unsafe.Pointer(params)))
		}
	}
	if sym := C._glGetString(r.resolve("glGetString")); sym != nil {
		p.GetString = func(name uint32) *byte {
			return (*byte)(unsafe.Pointer(C.glGetString(sym, C.GLenum(name))))
		}
	}
	if sym := C._glGetStringi(r.resolve("glGetStringi")); sym != nil {
		p.GetStringi = func(name uint32, index uint32) *byte {
			return (*byte)(unsafe.Pointer(C.glGetStringi(sym, C.GLenum(name), C.GLuint(index))))
		}
	}
	if sym := C._glGetSynciv(r.resolve("glGetSynciv")); sym != nil {
		p.GetSynciv = func(sync uintptr, pname uint32, count int32, length *int32, values *int32) {
			C.glGetSynciv(sym, C.uintptr_t(sync), C.GLenum(pname), C.GLsizei(count), (*C.GLsizei)(unsafe.Pointer(length)), (*C.GLint)(unsafe.Pointer(values)))
		}
	}
	if sym := C._glGetUniformBlockIndex(r.resolve("glGetUniformBlockIndex")); sym != nil {
		p.GetUniformBlockIndex = func(program uint32, uniformBlockName *byte) uint32 {
			return uint32(C.glGetUniformBlockIndex(sym, C.GLuint(program), (*C.GLchar)(unsafe.Pointer(uniformBlockName))))
		}
	}
	if sym := C._glGetUniformLocation(r.resolve("glGetUniformLocation")); sym != nil {
		p.GetUniformLocation = func(program uint32, name *byte) int32 {
			return int32(C.glGetUniformLocation(sym, C.GLuint(program), (*C.GLchar)(unsafe.Pointer(name))))
		}
	}
	if sym := C._glHint(r.resolve("glHint")); sym != nil {
		p.Hint = func(target uint32, mode uint32) {
			C.glHint(sym, C.GLenum(target), C.GLenum(mode))
		}
	}
	if sym := C._glInvalidateFramebuffer(r.resolve("glInvalidateFramebuffer")); sym != nil {
		p.InvalidateFramebuffer = func(target uint32, numAttachments int32, attachments *uint32) {
			C.glInvalidateFramebuffer(sym, C.GLenum(target), C.GLsizei(numAttachments), (*C.GLenum)(unsafe.Pointer(attachments)))
		}
	}
	if sym := C._glIsEnabled(r.resolve("glIsEnabled")); sym != nil {
		p.IsEnabled = func(cap uint32) bool {
			return C.glIsEnabled(sym, C.GLenum(cap)) != 0
		}
	}
	if sym := C._glLineWidth(r.resolve("glLineWidth")); sym != nil {
		p.LineWidth = func(width float32) {
			C.glLineWidth(sym, C.GLfloat(width))
		}
	}
	if sym := C._glLinkProgram(r.resolve("glLinkProgram")); sym != nil {
		p.LinkProgram = func(program uint32) {
			C.glLinkProgram(sym, C.GLuint(program))
		}
	}
	if sym := C._glMapBufferRange(r.resolve("glMapBufferRange")); sym != nil {
		p.MapBufferRange = func(target uint32, offset int, length int, access uint32) unsafe.Pointer {
			return C.glMapBufferRange(sym, C.GLenum(target), C.GLintptr(offset), C.GLsizeiptr(length), C.GLbitfield(access))
		}
	}
	if sym := C._glMemoryBarrier(r.resolve("glMemoryBarrier")); sym != nil {
		p.MemoryBarrier = func(barriers uint32) {
			C.glMemoryBarrier(sym, C.GLbitfield(barriers))
		}
	}
	if sym := C._glObjectLabel(r.resolve("glObjectLabel")); sym != nil {
		p.ObjectLabel = func(identifier uint32, name uint32, length int32, label *byte) {
			C.glObjectLabel(sym, C.GLenum(identifier), C.GLuint(name), C.GLsizei(length), (*C.GLchar)(unsafe.Pointer(label)))
		}
	}
	if sym := C._glObjectLabelKHR(r.resolve("glObjectLabelKHR")); sym != nil {
		p.ObjectLabelKHR = func(identifier uint32, name uint32, length int32, label *byte) {
			C.glObjectLabelKHR(sym, C.GLenum(identifier), C.GLuint(name), C.GLsizei(length), (*C.GLchar)(unsafe.Pointer(label)))
		}
	}
	if sym := C._glObjectPtrLabel(r.resolve("glObjectPtrLabel")); sym != nil {
		p.ObjectPtrLabel = func(ptr uintptr, length int32, label *byte) {
			C.glObjectPtrLabel(sym, C.uintptr_t(ptr), C.GLsizei(length), (*C.GLchar)(unsafe.Pointer(label)))
		}
	}
	if sym := C._glObjectPtrLabelKHR(r.resolve("glObjectPtrLabelKHR")); sym != nil {
		p.ObjectPtrLabelKHR = func(ptr uintptr, length int32, label *byte) {
			C.glObjectPtrLabelKHR(sym, C.uintptr_t(ptr), C.GLsizei(length), (*C.GLchar)(unsafe.Pointer(label)))
		}
	}
	if sym := C._glPauseTransformFeedback(r.resolve("glPauseTransformFeedback")); sym != nil {
		p.PauseTransformFeedback = func() {
			C.glPauseTransformFeedback(sym)
		}
	}
	if sym := C._glPixelStorei(r.resolve("glPixelStorei")); sym != nil {
		p.PixelStorei = func(pname uint32, param int32) {
			C.glPixelStorei(sym, C.GLenum(pname), C.GLint(param))
		}
	}
	if sym := C._glPolygonMode(r.resolve("glPolygonMode")); sym != nil {
		p.PolygonMode = func(face uint32, mode uint32) {
			C.glPolygonMode(sym, C.GLenum(face), C.GLenum(mode))
		}
	}
	if sym := C._glPolygonOffset(r.resolve("glPolygonOffset")); sym != nil {
		p.PolygonOffset = func(factor float32, units float32) {
			C.glPolygonOffset(sym, C.GLfloat(factor), C.GLfloat(units))
		}
	}
	if sym := C._glPopDebugGroup(r.resolve("glPopDebugGroup")); sym != nil {
		p.PopDebugGroup = func() {
			C.glPopDebugGroup(sym)
		}
	}
	if sym := C._glPopDebugGroupKHR(r.resolve("glPopDebugGroupKHR")); sym != nil {
		p.PopDebugGroupKHR = func() {
			C.glPopDebugGroupKHR(sym)
		}
	}
	if sym := C._glPushDebugGroup(r.resolve("glPushDebugGroup")); sym != nil {
		p.PushDebugGroup = func(source uint32, id uint32, length int32, message *byte) {
			C.glPushDebugGroup(sym, C.GLenum(source), C.GLuint(id), C.GLsizei(length), (*C.GLchar)(unsafe.Pointer(message)))
		}
	}
	if sym := C._glPushDebugGroupKHR(r.resolve("glPushDebugGroupKHR")); sym != nil {
		p.PushDebugGroupKHR = func(source uint32, id uint32, length int32, message *byte) {
			C.glPushDebugGroupKHR(sym, C.GLenum(source), C.GLuint(id), C.GLsizei(length), (*C.GLchar)(unsafe.Pointer(message)))
		}
	}
	if sym := C._glQueryCounter(r.resolve("glQueryCounter")); sym != nil {
		p.QueryCounter = func(id uint32, target uint32) {
			C.glQueryCounter(sym, C.GLuint(id), C.GLenum(target))
		}
	}
	if sym := C._glQueryCounterEXT(r.resolve("glQueryCounterEXT")); sym != nil {
		p.QueryCounterEXT = func(id uint32, target uint32) {
			C.glQueryCounterEXT(sym, C.GLuint(id), C.GLenum(target))
		}
	}
	if sym := C._glReadBuffer(r.resolve("glReadBuffer")); sym != nil {
		p.ReadBuffer = func(src uint32) {
			C.glReadBuffer(sym, C.GLenum(src))
		}
	}
	if sym := C._glReadPixels(r.resolve("glReadPixels")); sym != nil {
		p.ReadPixels = func(x int32, y int32, width int32, height int32, format uint32, typ uint32, pixels unsafe.Pointer) {
			C.glReadPixels(sym, C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height), C.GLenum(format), C.GLenum(typ), pixels)
		}
	}
	if sym := C._glRenderbufferStorage(r.resolve("glRenderbufferStorage")); sym != nil {
		p.RenderbufferStorage = func(target uint32, internalformat uint32, width int32, height int32) {
			C.glRenderbufferStorage(sym, C.GLenum(target), C.GLenum(internalformat), C.GLsizei(width), C.GLsizei(height))
		}
	}
	if sym := C._glRenderbufferStorageMultisample(r.resolve("glRenderbufferStorageMultisample")); sym != nil {
		p.RenderbufferStorageMultisample = func(target uint32, samples int32, internalformat uint32, width int32, height int32) {
			C.glRenderbufferStorageMultisample(sym, C.GLenum(target), C.GLsizei(samples), C.GLenum(internalformat), C.GLsizei(width), C.GLsizei(height))
		}
	}
	if sym := C._glResumeTransformFeedback(r.resolve("glResumeTransformFeedback")); sym != nil {
		p.ResumeTransformFeedback = func() {
			C.glResumeTransformFeedback(sym)
		}
	}
	if sym := C._glSamplerParameterf(r.resolve("glSamplerParameterf")); sym != nil {
		p.SamplerParameterf = func(sampler uint32, pname uint32, param float32) {
			C.glSamplerParameterf(sym, C.GLuint(sampler), C.GLenum(pname), C.GLfloat(param))
		}
	}
	if sym := C._glSamplerParameteri(r.resolve("glSamplerParameteri")); sym != nil {
		p.SamplerParameteri = func(sampler uint32, pname uint32, param int32) {
			C.glSamplerParameteri(sym, C.GLuint(sampler), C.GLenum(pname), C.GLint(param))
		}
	}
	if sym := C._glScissor(r.resolve("glScissor")); sym != nil {
		p.Scissor = func(x int32, y int32, width int32, height int32) {
			C.glScissor(sym, C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height))
		}
	}
	if sym := C._glStencilFunc(r.resolve("glStencilFunc")); sym != nil {
		p.StencilFunc = func(fn uint32, ref int32, mask uint32) {
			C.glStencilFunc(sym, C.GLenum(fn), C.GLint(ref), C.GLuint(mask))
		}
	}
	if sym := C._glStencilFuncSeparate(r.resolve("glStencilFuncSeparate")); sym != nil {
		p.StencilFuncSeparate = func(face uint32, fn uint32, ref int32, mask uint32) {
			C.glStencilFuncSeparate(sym, C.GLenum(face), C.GLenum(fn), C.GLint(ref), C.GLuint(mask))
		}
	}
	if sym := C._glStencilMask(r.resolve("glStencilMask")); sym != nil {
		p.StencilMask = func(mask uint32) {
			C.glStencilMask(sym, C.GLuint(mask))
		}
	}
	if sym := C._glStencilMaskSeparate(r.resolve("glStencilMaskSeparate")); sym != nil {
		p.StencilMaskSeparate = func(face uint32, mask uint32) {
			C.glStencilMaskSeparate(sym, C.GLenum(face), C.GLuint(mask))
		}
	}
	if sym := C._glStencilOp(r.resolve("glStencilOp")); sym != nil {
		p.StencilOp = func(fail uint32, zfail uint32, zpass uint32) {
			C.glStencilOp(sym, C.GLenum(fail), C.GLenum(zfail), C.GLenum(zpass))
		}
	}
	if sym := C._glStencilOpSeparate(r.resolve("glStencilOpSeparate")); sym != nil {
		p.StencilOpSeparate = func(face uint32, sfail uint32, dpfail uint32, dppass uint32) {
			C.glStencilOpSeparate(sym, C.GLenum(face), C.GLenum(sfail), C.GLenum(dpfail), C.GLenum(dppass))
		}
	}
	if sym := C._glTexImage2D(r.resolve("glTexImage2D")); sym != nil {
		p.TexImage2D = func(target uint32, level int32, internalformat int32, width int32, height int32, border int32, format uint32, typ uint32, pixels unsafe.Pointer) {
			C.glTexImage2D(sym, C.GLenum(target), C.GLint(level), C.GLint(internalformat), C.GLsizei(width), C.GLsizei(height), C.GLint(border), C.GLenum(format), C.GLenum(typ), pixels)
		}
	}
	if sym := C._glTexImage3D(r.resolve("glTexImage3D")); sym != nil {
		p.TexImage3D = func(target uint32, level int32, internalformat int32, width int32, height int32, depth int32, border int32, format uint32, typ uint32, pixels unsafe.Pointer) {
			C.glTexImage3D(sym, C.GLenum(target), C.GLint(level), C.GLint(internalformat), C.GLsizei(width), C.GLsizei(height), C.GLsizei(depth), C.GLint(border), C.GLenum(format), C.GLenum(typ), pixels)
		}
	}
	if sym := C._glTexParameterf(r.resolve("glTexParameterf")); sym != nil {
		p.TexParameterf = func(target uint32, pname uint32, param float32) {
			C.glTexParameterf(sym, C.GLenum(target), C.GLenum(pname), C.GLfloat(param))
		}
	}
	if sym := C._glTexParameteri(r.resolve("glTexParameteri")); sym != nil {
		p.TexParameteri = func(target uint32, pname uint32, param int32) {
			C.glTexParameteri(sym, C.GLenum(target), C.GLenum(pname), C.GLint(param))
		}
	}
	if sym := C._glTexStorage2D(r.resolve("glTexStorage2D")); sym != nil {
		p.TexStorage2D = func(target uint32, levels int32, internalformat uint32, width int32, height int32) {
			C.glTexStorage2D(sym, C.GLenum(target), C.GLsizei(levels), C.GLenum(internalformat), C.GLsizei(width), C.GLsizei(height))
		}
	}
	if sym := C._glTexStorage3D(r.resolve("glTexStorage3D")); sym != nil {
		p.TexStorage3D = func(target uint32, levels int32, internalformat uint32, width int32, height int32, depth int32) {
			C.glTexStorage3D(sym, C.GLenum(target), C.GLsizei(levels), C.GLenum(internalformat), C.GLsizei(width), C.GLsizei(height), C.GLsizei(depth))
		}
	}
	if sym := C._glTexSubImage2D(r.resolve("glTexSubImage2D")); sym != nil {
		p.TexSubImage2D = func(target uint32, level int32, xoffset int32, yoffset int32, width int32, height int32, format uint32, typ uint32, pixels unsafe.Pointer) {
			C.glTexSubImage2D(sym, C.GLenum(target), C.GLint(level), C.GLint(xoffset), C.GLint(yoffset), C.GLsizei(width), C.GLsizei(height), C.GLenum(format), C.GLenum(typ), pixels)
		}
	}
	if sym := C._glTexSubImage3D(r.resolve("glTexSubImage3D")); sym != nil {
		p.TexSubImage3D = func(target uint32, level int32, xoffset int32, yoffset int32, zoffset int32, width int32, height int32, depth int32, format uint32, typ uint32, pixels unsafe.Pointer) {
			C.glTexSubImage3D(sym, C.GLenum(target), C.GLint(level), C.GLint(xoffset), C.GLint(yoffset), C.GLint(zoffset), C.GLsizei(width), C.GLsizei(height), C.GLsizei(depth), C.GLenum(format), C.GLenum(typ), pixels)
		}
	}
	if sym := C._glUniform1f(r.resolve("glUniform1f")); sym != nil {
		p.Uniform1f = func(location int32, v0 float32) {
			C.glUniform1f(sym, C.GLint(location), C.GLfloat(v0))
		}
	}
	if sym := C._glUniform1fv(r.resolve("glUniform1fv")); sym != nil {
		p.Uniform1fv = func(location int32, count int32, value *float32) {
			C.glUniform1fv(sym, C.GLint(location), C.GLsizei(count), (*C.GLfloat)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniform1i(r.resolve("glUniform1i")); sym != nil {
		p.Uniform1i = func(location int32, v0 int32) {
			C.glUniform1i(sym, C.GLint(location), C.GLint(v0))
		}
	}
	if sym := C._glUniform1iv(r.resolve("glUniform1iv")); sym != nil {
		p.Uniform1iv = func(location int32, count int32, value *int32) {
			C.glUniform1iv(sym, C.GLint(location), C.GLsizei(count), (*C.GLint)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniform1ui(r.resolve("glUniform1ui")); sym != nil {
		p.Uniform1ui = func(location int32, v0 uint32) {
			C.glUniform1ui(sym, C.GLint(location), C.GLuint(v0))
		}
	}
	if sym := C._glUniform1uiv(r.resolve("glUniform1uiv")); sym != nil {
		p.Uniform1uiv = func(location int32, count int32, value *uint32) {
			C.glUniform1uiv(sym, C.GLint(location), C.GLsizei(count), (*C.GLuint)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniform2f(r.resolve("glUniform2f")); sym != nil {
		p.Uniform2f = func(location int32, v0 float32, v1 float32) {
			C.glUniform2f(sym, C.GLint(location), C.GLfloat(v0), C.GLfloat(v1))
		}
	}
	if sym := C._glUniform2fv(r.resolve("glUniform2fv")); sym != nil {
		p.Uniform2fv = func(location int32, count int32, value *float32) {
			C.glUniform2fv(sym, C.GLint(location), C.GLsizei(count), (*C.GLfloat)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniform2i(r.resolve("glUniform2i")); sym != nil {
		p.Uniform2i = func(location int32, v0 int32, v1 int32) {
			C.glUniform2i(sym, C.GLint(location), C.GLint(v0), C.GLint(v1))
		}
	}
	if sym := C._glUniform2iv(r.resolve("glUniform2iv")); sym != nil {
		p.Uniform2iv = func(location int32, count int32, value *int32) {
			C.glUniform2iv(sym, C.GLint(location), C.GLsizei(count), (*C.GLint)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniform2ui(r.resolve("glUniform2ui")); sym != nil {
		p.Uniform2ui = func(location int32, v0 uint32, v1 uint32) {
			C.glUniform2ui(sym, C.GLint(location), C.GLuint(v0), C.GLuint(v1))
		}
	}
	if sym := C._glUniform2uiv(r.resolve("glUniform2uiv")); sym != nil {
		p.Uniform2uiv = func(location int32, count int32, value *uint32) {
			C.glUniform2uiv(sym, C.GLint(location), C.GLsizei(count), (*C.GLuint)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniform3f(r.resolve("glUniform3f")); sym != nil {
		p.Uniform3f = func(location int32, v0 float32, v1 float32, v2 float32) {
			C.glUniform3f(sym, C.GLint(location), C.GLfloat(v0), C.GLfloat(v1), C.GLfloat(v2))
		}
	}
	if sym := C._glUniform3fv(r.resolve("glUniform3fv")); sym != nil {
		p.Uniform3fv = func(location int32, count int32, value *float32) {
			C.glUniform3fv(sym, C.GLint(location), C.GLsizei(count), (*C.GLfloat)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniform3i(r.resolve("glUniform3i")); sym != nil {
		p.Uniform3i = func(location int32, v0 int32, v1 int32, v2 int32) {
			C.glUniform3i(sym, C.GLint(location), C.GLint(v0), C.GLint(v1), C.GLint(v2))
		}
	}
	if sym := C._glUniform3iv(r.resolve("glUniform3iv")); sym != nil {
		p.Uniform3iv = func(location int32, count int32, value *int32) {
			C.glUniform3iv(sym, C.GLint(location), C.GLsizei(count), (*C.GLint)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniform3ui(r.resolve("glUniform3ui")); sym != nil {
		p.Uniform3ui = func(location int32, v0 uint32, v1 uint32, v2 uint32) {
			C.glUniform3ui(sym, C.GLint(location), C.GLuint(v0), C.GLuint(v1), C.GLuint(v2))
		}
	}
	if sym := C._glUniform3uiv(r.resolve("glUniform3uiv")); sym != nil {
		p.Uniform3uiv = func(location int32, count int32, value *uint32) {
			C.glUniform3uiv(sym, C.GLint(location), C.GLsizei(count), (*C.GLuint)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniform4f(r.resolve("glUniform4f")); sym != nil {
		p.Uniform4f = func(location int32, v0 float32, v1 float32, v2 float32, v3 float32) {
			C.glUniform4f(sym, C.GLint(location), C.GLfloat(v0), C.GLfloat(v1), C.GLfloat(v2), C.GLfloat(v3))
		}
	}
	if sym := C._glUniform4fv(r.resolve("glUniform4fv")); sym != nil {
		p.Uniform4fv = func(location int32, count int32, value *float32) {
			C.glUniform4fv(sym, C.GLint(location), C.GLsizei(count), (*C.GLfloat)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniform4i(r.resolve("glUniform4i")); sym != nil {
		p.Uniform4i = func(location int32, v0 int32, v1 int32, v2 int32, v3 int32) {
			C.glUniform4i(sym, C.GLint(location), C.GLint(v0), C.GLint(v1), C.GLint(v2), C.GLint(v3))
		}
	}
	if sym := C._glUniform4iv(r.resolve("glUniform4iv")); sym != nil {
		p.Uniform4iv = func(location int32, count int32, value *int32) {
			C.glUniform4iv(sym, C.GLint(location), C.GLsizei(count), (*C.GLint)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniform4ui(r.resolve("glUniform4ui")); sym != nil {
		p.Uniform4ui = func(location int32, v0 uint32, v1 uint32, v2 uint32, v3 uint32) {
			C.glUniform4ui(sym, C.GLint(location), C.GLuint(v0), C.GLuint(v1), C.GLuint(v2), C.GLuint(v3))
		}
	}
	if sym := C._glUniform4uiv(r.resolve("glUniform4uiv")); sym != nil {
		p.Uniform4uiv = func(location int32, count int32, value *uint32) {
			C.glUniform4uiv(sym, C.GLint(location), C.GLsizei(count), (*C.GLuint)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniformBlockBinding(r.resolve("glUniformBlockBinding")); sym != nil {
		p.UniformBlockBinding = func(program uint32, uniformBlockIndex uint32, uniformBlockBinding uint32) {
			C.glUniformBlockBinding(sym, C.GLuint(program), C.GLuint(uniformBlockIndex), C.GLuint(uniformBlockBinding))
		}
	}
	if sym := C._glUniformMatrix2fv(r.resolve("glUniformMatrix2fv")); sym != nil {
		p.UniformMatrix2fv = func(location int32, count int32, transpose bool, value *float32) {
			C.glUniformMatrix2fv(sym, C.GLint(location), C.GLsizei(count), glBool(transpose), (*C.GLfloat)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniformMatrix3fv(r.resolve("glUniformMatrix3fv")); sym != nil {
		p.UniformMatrix3fv = func(location int32, count int32, transpose bool, value *float32) {
			C.glUniformMatrix3fv(sym, C.GLint(location), C.GLsizei(count), glBool(transpose), (*C.GLfloat)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUniformMatrix4fv(r.resolve("glUniformMatrix4fv")); sym != nil {
		p.UniformMatrix4fv = func(location int32, count int32, transpose bool, value *float32) {
			C.glUniformMatrix4fv(sym, C.GLint(location), C.GLsizei(count), glBool(transpose), (*C.GLfloat)(unsafe.Pointer(value)))
		}
	}
	if sym := C._glUnmapBuffer(r.resolve("glUnmapBuffer")); sym != nil {
		p.UnmapBuffer = func(target uint32) bool {
			return C.glUnmapBuffer(sym, C.GLenum(target)) != 0
		}
	}
	if sym := C._glUseProgram(r.resolve("glUseProgram")); sym != nil {
		p.UseProgram = func(program uint32) {
			C.glUseProgram(sym, C.GLuint(program))
		}
	}
	if sym := C._glValidateProgram(r.resolve("glValidateProgram")); sym != nil {
		p.ValidateProgram = func(program uint32) {
			C.glValidateProgram(sym, C.GLuint(program))
		}
	}
	if sym := C._glVertexAttrib1f(r.resolve("glVertexAttrib1f")); sym != nil {
		p.VertexAttrib1f = func(index uint32, x float32) {
			C.glVertexAttrib1f(sym, C.GLuint(index), C.GLfloat(x))
		}
	}
	if sym := C._glVertexAttrib2f(r.resolve("glVertexAttrib2f")); sym != nil {
		p.VertexAttrib2f = func(index uint32, x float32, y float32) {
			C.glVertexAttrib2f(sym, C.GLuint(index), C.GLfloat(x), C.GLfloat(y))
		}
	}
	if sym := C._glVertexAttrib3f(r.resolve("glVertexAttrib3f")); sym != nil {
		p.VertexAttrib3f = func(index uint32, x float32, y float32, z float32) {
			C.glVertexAttrib3f(sym, C.GLuint(index), C.GLfloat(x), C.GLfloat(y), C.GLfloat(z))
		}
	}
	if sym := C._glVertexAttrib4f(r.resolve("glVertexAttrib4f")); sym != nil {
		p.VertexAttrib4f = func(index uint32, x float32, y float32, z float32, w float32) {
			C.glVertexAttrib4f(sym, C.GLuint(index), C.GLfloat(x), C.GLfloat(y), C.GLfloat(z), C.GLfloat(w))
		}
	}
	if sym := C._glVertexAttribDivisor(r.resolve("glVertexAttribDivisor")); sym != nil {
		p.VertexAttribDivisor = func(index uint32, divisor uint32) {
			C.glVertexAttribDivisor(sym, C.GLuint(index), C.GLuint(divisor))
		}
	}
	if sym := C._glVertexAttribDivisorANGLE(r.resolve("glVertexAttribDivisorANGLE")); sym != nil {
		p.VertexAttribDivisorANGLE = func(index uint32, divisor uint32) {
			C.glVertexAttribDivisorANGLE(sym, C.GLuint(index), C.GLuint(divisor))
		}
	}
	if sym := C._glVertexAttribDivisorEXT(r.resolve("glVertexAttribDivisorEXT")); sym != nil {
		p.VertexAttribDivisorEXT = func(index uint32, divisor uint32) {
			C.glVertexAttribDivisorEXT(sym, C.GLuint(index), C.GLuint(divisor))
		}
	}
	if sym := C._glVertexAttribIPointer(r.resolve("glVertexAttribIPointer")); sym != nil {
		p.VertexAttribIPointer = func(index uint32, size int32, typ uint32, stride int32, pointer uintptr) {
			C.glVertexAttribIPointer(sym, C.GLuint(index), C.GLint(size), C.GLenum(typ), C.GLsizei(stride), C.uintptr_t(pointer))
		}
	}
	if sym := C._glVertexAttribPointer(r.resolve("glVertexAttribPointer")); sym != nil {
		p.VertexAttribPointer = func(index uint32, size int32, typ uint32, normalized bool, stride int32, pointer uintptr) {
			C.glVertexAttribPointer(sym, C.GLuint(index), C.GLint(size), C.GLenum(typ), glBool(normalized), C.GLsizei(stride), C.uintptr_t(pointer))
		}
	}
	if sym := C._glViewport(r.resolve("glViewport")); sym != nil {
		p.Viewport = func(x int32, y int32, width int32, height int32) {
			C.glViewport(sym, C.GLint(x), C.GLint(y), C.GLsizei(width), C.GLsizei(height))
		}
	}
	if sym := C._glWaitSync(r.resolve("glWaitSync")); sym != nil {
		p.WaitSync = func(sync uintptr, flags uint32, timeout uint64) {
			C.glWaitSync(sym, C.uintptr_t(sync), C.GLbitfield(flags), C.GLuint64(timeout))
		}
	}
	if sym := C._glShaderSource(r.resolve("glShaderSource")); sym != nil {
		p.ShaderSource = func(shader uint32, src string) {
			csrc := C.CString(src)
			defer C.free(unsafe.Pointer(csrc))
			strlen := C.GLint(len(src))
			C.glShaderSource(sym, C.GLuint(shader), 1, (**C.GLchar)(unsafe.Pointer(&csrc)), &strlen)
		}
	}
	if sym := C._glTransformFeedbackVaryings(r.resolve("glTransformFeedbackVaryings")); sym != nil {
		p.TransformFeedbackVaryings = func(program uint32, varyings []string, bufferMode uint32) {
			cvars := make([]*C.char, len(varyings))
			for i, v := range varyings {
				cvars[i] = C.CString(v)
				defer C.free(unsafe.Pointer(cvars[i]))
			}
			var ptr **C.GLchar
			if len(cvars) > 0 {
				ptr = (**C.GLchar)(unsafe.Pointer(&cvars[0]))
			}
			C.glTransformFeedbackVaryings(sym, C.GLuint(program), C.GLsizei(len(cvars)), ptr, C.GLenum(bufferMode))
		}
	}
	for _, name := range []string{"glDebugMessageCallback", "glDebugMessageCallbackKHR"} {
		sym := C._glDebugMessageCallback(r.resolve(name))
		if sym == nil {
			continue
		}
		fn := func(token uintptr) {
			C.glDebugMessageCallback(sym, C.uintptr_t(token))
		}
		if name == "glDebugMessageCallback" {
			p.DebugMessageCallback = fn
		} else {
			p.DebugMessageCallbackKHR = fn
		}
	}
	return p, nil
}

func glBool(b bool) C.GLboolean {
	if b {
		return 1
	}
	return 0
}
