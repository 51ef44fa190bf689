package pac

//go:generate go run github.com/chaseadam/gateware/cmd/pacgen -o pac.go -p pac soc.svd
