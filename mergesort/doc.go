// Package mergesort 인덱스 범위 기반 병합 정렬.
//
// 입력 슬라이스는 읽기 전용으로 다루고, 재귀 호출마다 정렬된 새 슬라이스를
// 하나씩 만들어 호출자에게 넘긴다. 병합 단계는 세 가지 경로 중 하나를 고른다.
//
//   - append: last(left) <= first(right) 이면 이어 붙이기만 함
//   - insertion: 간격 last(left)-first(right) 가 임계값(기본 3) 미만이면
//     left 복사본 뒤에서부터 right 원소를 하나씩 삽입
//   - buffered: 그 외에는 버퍼 하나에 두 포인터 병합 (동률이면 left 우선)
//
// 어느 경로를 타도 결과는 같고 성능만 달라진다.
//
//	sorted := mergesort.Sort([]int{1, 9, 2, 8}) // [1 2 8 9]
//
// 벤치마크 비교용으로 TopDown(삽입정렬 컷오프 병합 정렬)과
// QuickSort(3-way 퀵소트)도 함께 제공한다.
package mergesort
