// Command vecbench drives vector workloads under each allocation strategy
// and reports capacity growth and strategy traffic.
package main

func main() {
	execute()
}
