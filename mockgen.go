//go:build gomock || generate

package quicmux

//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package quicmux -self_package github.com/quicmux/quicmux -destination mock_session_test.go github.com/quicmux/quicmux Session && go run golang.org/x/tools/cmd/goimports -w mock_session_test.go"
//go:generate sh -c "go run go.uber.org/mock/mockgen -typed -build_flags=\"-tags=gomock\" -package quicmux -self_package github.com/quicmux/quicmux -destination mock_packet_writer_test.go github.com/quicmux/quicmux PacketWriter && go run golang.org/x/tools/cmd/goimports -w mock_packet_writer_test.go"
