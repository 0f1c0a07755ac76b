// Package video writes rendered frames to an H.264/AAC file by piping raw
// RGB24 video into an external ffmpeg process and muxing the source audio
// alongside it. ffmpeg must be on PATH (or named explicitly); nothing is
// linked in.
package video
