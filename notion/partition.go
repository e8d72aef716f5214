package notion

// MaxBlocksPerAppend is the destination's per-request block limit.
const MaxBlocksPerAppend = 100

// Partition splits blocks into ordered chunks of at most size. Empty input
// yields zero batches, never one empty batch; a non-empty input smaller than
// size yields a single batch. A size below 1 falls back to
// MaxBlocksPerAppend.
func Partition(blocks []Block, size int) [][]Block {
	if size < 1 {
		size = MaxBlocksPerAppend
	}
	if len(blocks) == 0 {
		return nil
	}

	batches := make([][]Block, 0, (len(blocks)+size-1)/size)
	for start := 0; start < len(blocks); start += size {
		end := start + size
		if end > len(blocks) {
			end = len(blocks)
		}
		batches = append(batches, blocks[start:end])
	}

	return batches
}
