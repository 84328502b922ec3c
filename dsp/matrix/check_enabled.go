//go:build !nomatrixcheck

package matrix

const shapeCheck = true
