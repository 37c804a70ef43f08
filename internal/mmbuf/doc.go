// Package mmbuf provides page-aligned backing buffers that live outside the
// Go heap. On unix platforms buffers come from anonymous memory mappings;
// elsewhere a plain heap slice is used. The caller owns the returned buffer
// and is responsible for releasing it with Free.
package mmbuf
